package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ohio-order/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL+"/", 2*time.Second)
}

func TestMejaRepository_LoginCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/meja/nomor/7":
			w.Write([]byte(`{"id":"meja-7"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/meja/meja-7/session":
			w.Write([]byte(`{"sessionId":"sess-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewMejaRepository(client)

	meja, err := repo.FindByNomor(context.Background(), "7")
	if err != nil {
		t.Fatalf("FindByNomor: %v", err)
	}
	if meja.ID != "meja-7" {
		t.Fatalf("meja id = %q", meja.ID)
	}

	sess, err := repo.CreateSession(context.Background(), meja.ID)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.SessionID != "sess-1" {
		t.Fatalf("session id = %q", sess.SessionID)
	}
}

func TestAPIClient_ErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusNotFound, `{"message":"Meja tidak ditemukan"}`, "Meja tidak ditemukan"},
		{"error field", http.StatusBadRequest, `{"error":"bad nomor"}`, "bad nomor"},
		{"no body", http.StatusInternalServerError, ``, ""},
		{"html body", http.StatusBadGateway, `<html>oops</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := NewMejaRepository(client).FindByNomor(context.Background(), "1")

			var apiErr *models.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *models.APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestOrderRepository_SendsSessionAndPayload(t *testing.T) {
	var gotHeader string
	var gotBody models.UpdateOrderRequest
	var removed string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(SessionHeader)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/orders/me":
			w.Write([]byte(`{"id":"o1","nomorMeja":"7","locked":false,"items":[{"id":"i1","menuItemId":"m1","menuItemName":"Nasi Goreng","price":50000,"quantity":2,"subtotal":100000}],"total":100000}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/orders/me":
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &gotBody)
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/orders/me/items/i1":
			removed = "i1"
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewOrderRepository(client)
	sess := models.Session{ID: "sess-1"}
	ctx := context.Background()

	order, err := repo.GetCurrent(ctx, sess)
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if gotHeader != "sess-1" {
		t.Errorf("X-Session-Id = %q", gotHeader)
	}
	if len(order.Items) != 1 || order.Items[0].Subtotal != 100000 {
		t.Fatalf("unexpected order: %+v", order)
	}

	updated, err := repo.Update(ctx, sess, order.UpdateRequest())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil order for empty response, got %+v", updated)
	}
	if len(gotBody.Items) != 1 || gotBody.Items[0].MenuItemID != "m1" || gotBody.Items[0].Quantity != 2 {
		t.Errorf("unexpected update payload: %+v", gotBody)
	}

	if err := repo.RemoveItem(ctx, sess, "i1"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if removed != "i1" {
		t.Errorf("remove call not received")
	}
}

func TestCheckoutRepository_GetCurrent(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantNil    bool
		wantID     string
		wantStatus int
	}{
		{"existing", http.StatusOK, `{"id":"c1","status":"pending"}`, false, "c1", 0},
		{"null body", http.StatusOK, `null`, true, "", 0},
		{"empty body", http.StatusOK, ``, true, "", 0},
		{"not found", http.StatusNotFound, `{"message":"Checkout not found"}`, true, "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/checkout/me" || r.Header.Get(SessionHeader) != "sess-1" {
					w.WriteHeader(http.StatusTeapot)
					return
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			checkout, err := NewCheckoutRepository(client).GetCurrent(context.Background(), models.Session{ID: "sess-1"})
			if got := models.StatusOf(err); got != tt.wantStatus {
				t.Fatalf("status = %d, want %d (err %v)", got, tt.wantStatus, err)
			}
			if tt.wantNil != (checkout == nil) {
				t.Fatalf("checkout = %+v, wantNil %v", checkout, tt.wantNil)
			}
			if checkout != nil && checkout.ID != tt.wantID {
				t.Errorf("id = %q, want %q", checkout.ID, tt.wantID)
			}
		})
	}
}

func TestActivityRepository_DisabledWithoutDB(t *testing.T) {
	repo := NewActivityRepository(nil)
	if repo.Enabled() {
		t.Fatal("expected disabled repository")
	}
	if err := repo.Record(context.Background(), &models.OrderActivity{SessionID: "s"}); err != nil {
		t.Errorf("Record: %v", err)
	}
	list, err := repo.ListBySession(context.Background(), "s", 10)
	if err != nil || len(list) != 0 {
		t.Errorf("ListBySession = %v, %v", list, err)
	}
}
