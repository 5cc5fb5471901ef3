package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

func TestMethodNotAllowedIsStructured(t *testing.T) {
	server := NewAPIServer(":0")
	app := server.GetEngine()
	app.Get("/only-get", func(c *fiber.Ctx) error {
		return response.Success(c, nil)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/only-get", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}

	var body response.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Success {
		t.Error("success = true on a 405")
	}
	if body.Error == nil || body.Error.Code != response.CodeMethodNotAllowed {
		t.Errorf("error = %+v, want code %s", body.Error, response.CodeMethodNotAllowed)
	}
}

func TestUnknownRouteIsStructured(t *testing.T) {
	server := NewAPIServer(":0")
	app := server.GetEngine()

	req := httptest.NewRequest(fiber.MethodGet, "/nope", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body response.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body.Error == nil || body.Error.Code != response.CodeNotFound {
		t.Errorf("error = %+v, want code %s", body.Error, response.CodeNotFound)
	}
}
