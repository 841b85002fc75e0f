package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-strictdate/app"
)

func TestNew_Bootstraps(t *testing.T) {
	a := app.New("../config/testdata/empty.env")

	if a.Config == nil {
		t.Fatal("expected Config to be loaded")
	}
	if a.Router == nil {
		t.Fatal("expected Router to be created")
	}
	if a.Config.App.Port == "" {
		t.Error("expected App.Port default to be set")
	}
}

func TestNew_ReadsEnv(t *testing.T) {
	t.Setenv("APP_NAME", "KernelTest")
	t.Setenv("APP_ENV", "testing")

	a := app.New("../config/testdata/empty.env")

	if a.Config.App.Name != "KernelTest" {
		t.Errorf("App.Name: got %q want %q", a.Config.App.Name, "KernelTest")
	}
	if a.Config.App.Env != "testing" {
		t.Errorf("App.Env: got %q want %q", a.Config.App.Env, "testing")
	}
}

func TestApplication_RouterServes(t *testing.T) {
	a := app.New("../config/testdata/empty.env")
	a.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("GET /healthz: got %d want 200", rr.Code)
	}
}
