//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"
)

// End-to-end tests against a running portal (PORT=3000 by default) with its
// content backend reachable. Run with: go test -tags api ./tests/api/
const portalURL = "http://localhost:3000"

// client carries the session cookie across requests, like a browser would.
var client *http.Client

func TestMain(m *testing.M) {
	fmt.Println("Starting portal API tests...")
	fmt.Println("Make sure the portal and its content backend are running.")
	fmt.Println("")

	jar, err := cookiejar.New(nil)
	if err != nil {
		fmt.Println("cookie jar:", err)
		os.Exit(1)
	}
	client = &http.Client{Jar: jar, Timeout: 10 * time.Second}

	os.Exit(m.Run())
}

func TestPortal_FullFlow(t *testing.T) {
	waitForPortal(t)

	var eventID string

	t.Run("Step1_ListEvents", func(t *testing.T) {
		t.Log("STEP 1: List events")
		t.Log("    Request:  GET /api/v1/events")

		resp := get(t, portalURL+"/api/v1/events")
		assertStatus(t, resp, 200)

		var events []map[string]interface{}
		decodeJSON(t, resp, &events)
		if len(events) == 0 {
			t.Skip("no events seeded on the backend; skipping RSVP flow")
		}
		eventID, _ = events[0]["id"].(string)
		t.Logf("    Result:   %d events, first id=%v title=%v", len(events), events[0]["id"], events[0]["title"])
	})

	if eventID == "" {
		t.Skip("no event available for the remaining steps")
	}

	t.Run("Step2_OpenRsvpForm", func(t *testing.T) {
		t.Log("STEP 2: Open the RSVP form")
		t.Logf("    Request:  POST /api/v1/events/%s/rsvp-form", eventID)

		resp := post(t, portalURL+"/api/v1/events/"+eventID+"/rsvp-form", nil)
		assertStatus(t, resp, 200)

		var state map[string]interface{}
		decodeJSON(t, resp, &state)
		if state["phase"] != "open" {
			t.Fatalf("expected phase 'open', got %v", state["phase"])
		}
		t.Logf("    Result:   phase=%v activeEventId=%v", state["phase"], state["activeEventId"])
	})

	t.Run("Step3_FillForm", func(t *testing.T) {
		t.Log("STEP 3: Fill in the form, oversized guest count clamps to 10")
		t.Log("    Request:  PATCH /api/v1/rsvp-form")

		resp := patch(t, portalURL+"/api/v1/rsvp-form", map[string]string{
			"name":       "API Test Visitor",
			"email":      "api-test@example.org",
			"guestCount": "55",
		})
		assertStatus(t, resp, 200)

		var state map[string]interface{}
		decodeJSON(t, resp, &state)
		values := state["values"].(map[string]interface{})
		if values["guestCount"] != float64(10) {
			t.Fatalf("expected guestCount clamped to 10, got %v", values["guestCount"])
		}
		t.Logf("    Result:   name=%v guestCount=%v", values["name"], values["guestCount"])
	})

	t.Run("Step4_SubmitRsvp", func(t *testing.T) {
		t.Log("STEP 4: Submit the RSVP")
		t.Logf("    Request:  POST /api/v1/events/%s/rsvps", eventID)

		resp := post(t, portalURL+"/api/v1/events/"+eventID+"/rsvps", nil)
		assertStatus(t, resp, 200)

		var state map[string]interface{}
		decodeJSON(t, resp, &state)
		if state["successEventId"] != eventID {
			t.Fatalf("expected successEventId=%s, got %v", eventID, state["successEventId"])
		}
		if state["phase"] != "closed" {
			t.Fatalf("expected form closed after success, got %v", state["phase"])
		}
		t.Logf("    Result:   successEventId=%v phase=%v", state["successEventId"], state["phase"])
	})

	t.Run("Step5_DownloadCalendar", func(t *testing.T) {
		t.Log("STEP 5: Download the calendar file")
		t.Logf("    Request:  GET /api/v1/events/%s/calendar.ics", eventID)

		resp := get(t, portalURL+"/api/v1/events/"+eventID+"/calendar.ics")
		assertStatus(t, resp, 200)
		defer resp.Body.Close()

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			t.Fatalf("read body: %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("BEGIN:VCALENDAR")) {
			t.Fatal("response is not an iCalendar document")
		}
		t.Logf("    Result:   %d bytes, Content-Type=%v", buf.Len(), resp.Header.Get("Content-Type"))
	})

	t.Run("Step6_CheckoutValidation", func(t *testing.T) {
		t.Log("STEP 6: Checkout rejects a short card number without a backend call")
		t.Log("    Request:  PATCH then POST /api/v1/membership/checkout")

		resp := patch(t, portalURL+"/api/v1/membership/checkout", map[string]string{
			"firstName":  "API",
			"lastName":   "Tester",
			"email":      "api-test@example.org",
			"cardNumber": "4242",
			"cardExpiry": "12/27",
			"cardCvc":    "123",
		})
		assertStatus(t, resp, 200)
		resp.Body.Close()

		resp = post(t, portalURL+"/api/v1/membership/checkout", nil)
		assertStatus(t, resp, 400)

		var errResp map[string]interface{}
		decodeJSON(t, resp, &errResp)
		t.Logf("    Result:   HTTP 400, message=%v", errResp["message"])
	})

	t.Run("Step7_CheckoutStateSurvives", func(t *testing.T) {
		t.Log("STEP 7: Entered values survive the failed submit")
		t.Log("    Request:  GET /api/v1/membership/checkout")

		resp := get(t, portalURL+"/api/v1/membership/checkout")
		assertStatus(t, resp, 200)

		var state map[string]interface{}
		decodeJSON(t, resp, &state)
		form := state["form"].(map[string]interface{})
		if form["firstName"] != "API" {
			t.Fatalf("expected firstName preserved, got %v", form["firstName"])
		}
		t.Logf("    Result:   firstName=%v error=%v", form["firstName"], state["error"])
	})
}

// Helper functions

func waitForPortal(t *testing.T) {
	t.Log("Waiting for the portal to be ready...")

	for i := 0; i < 30; i++ {
		resp, err := client.Get(portalURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == 200 {
				t.Log("Portal is ready.")
				t.Log("")
				return
			}
		}
		time.Sleep(1 * time.Second)
	}

	t.Fatal("portal did not become ready in time")
}

func get(t *testing.T, url string) *http.Response {
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}

func post(t *testing.T, url string, body interface{}) *http.Response {
	buf := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewBuffer(jsonBody)
	}

	resp, err := client.Post(url, "application/json", buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func patch(t *testing.T, url string, body interface{}) *http.Response {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("PATCH %s: %v", url, err)
	}
	return resp
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected HTTP %d, got %d", want, resp.StatusCode)
	}
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(target)
	if err != nil && resp.StatusCode >= 400 {
		// Error responses might not be JSON.
		return
	}
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
