// Package clinictest runs an in-process fake of the clinic REST API for tests.
package clinictest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/and161185/kid-clinic/internal/model"
)

// Token is the bearer token the fake accepts unless changed with SetToken.
const Token = "test-access-token"

// OTP is the code the fake accepts on /verify-otp/.
const OTP = "123456"

// Request is a recorded incoming request.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
	Body          []byte
}

type override struct {
	status int
	body   string
}

// API is a fake clinic API. It starts with no children, two notifications,
// and one vaccination and one prescription for child 1.
type API struct {
	mu            sync.Mutex
	token         string
	delay         time.Duration
	next          *override
	requests      []Request
	nextID        int64
	children      []model.Child
	notifications []model.Notification
	vaccinations  map[int64][]model.Vaccination
	documents     map[int64][]model.Document
	otpsSent      int
}

// Server serves an API over httptest.
type Server struct {
	*httptest.Server
	*API
}

// New starts a fake server closed at test cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	api := NewAPI()
	s := &Server{Server: httptest.NewServer(api.Handler()), API: api}
	t.Cleanup(s.Close)
	return s
}

// NewAPI returns the fake API in its initial state.
func NewAPI() *API {
	return &API{
		token:  Token,
		nextID: 1,
		notifications: []model.Notification{
			{ID: 1, Title: "Appointment", Body: "Tomorrow at 10:00", IsRead: false},
			{ID: 2, Title: "Vaccination due", Body: "MMR second dose", IsRead: true},
		},
		vaccinations: map[int64][]model.Vaccination{
			1: {{ID: 7, Name: "BCG", Date: "2019-05-01"}},
		},
		documents: map[int64][]model.Document{
			1: {{ID: 3, Name: "Amoxicillin", Document: "/media/prescriptions/3.pdf"}},
		},
	}
}

// Handler routes the clinic endpoints.
func (s *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.intercept)

	r.Post("/register/", s.register)
	r.Post("/verify-otp/", s.verifyOTP)

	r.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/api/children/", s.addChild)
		r.Get("/notifications/", s.listNotifications)
		r.Patch("/notifications/{id}/", s.patchNotification)
		r.Get("/vaccinations/{child}/", s.listVaccinations)
		r.Get("/api/documents/child/{child}/prescription/", s.listPrescriptions)
	})
	return r
}

// SetToken changes the accepted bearer token.
func (s *API) SetToken(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
}

// SetDelay delays every response by d.
func (s *API) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// FailNext answers the next request with status and a raw body instead of handling it.
func (s *API) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = &override{status: status, body: body}
}

// Requests returns a copy of every request received so far.
func (s *API) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Children returns the stored children.
func (s *API) Children() []model.Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Child(nil), s.children...)
}

// Notification returns the stored notification with id.
func (s *API) Notification(id int64) (model.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == id {
			return n, true
		}
	}
	return model.Notification{}, false
}

// OTPsSent counts successful registrations, each of which dispatches a code.
func (s *API) OTPsSent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.otpsSent
}

func (s *API) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *API) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		delay, o := s.delay, s.next
		s.next = nil
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if o != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(o.status)
			_, _ = w.Write([]byte(o.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *API) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		want := "Bearer " + s.token
		s.mu.Unlock()
		if r.Header.Get("Authorization") != want {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *API) register(w http.ResponseWriter, r *http.Request) {
	var in model.Registration
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	missing := map[string][]string{}
	for field, v := range map[string]string{
		"full_name":    in.FullName,
		"email":        in.Email,
		"phone_number": in.PhoneNumber,
		"password":     in.Password,
	} {
		if strings.TrimSpace(v) == "" {
			missing[field] = []string{"This field may not be blank."}
		}
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, missing)
		return
	}
	s.mu.Lock()
	s.otpsSent++
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.Message{Message: "OTP sent to your email"})
}

func (s *API) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		OTP string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.OTP != OTP {
		writeJSON(w, http.StatusBadRequest, model.Message{Error: "Invalid OTP"})
		return
	}
	writeJSON(w, http.StatusOK, model.Message{Message: "OTP verified successfully"})
}

func (s *API) addChild(w http.ResponseWriter, r *http.Request) {
	var c model.Child
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_errors": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dup := map[string][]string{}
	for _, have := range s.children {
		if have.NationalID == c.NationalID {
			dup[model.FieldNationalID] = []string{"child with this child id number already exists."}
		}
		if have.URN == c.URN {
			dup[model.FieldURN] = []string{"child with this UAE number already exists."}
		}
	}
	if len(dup) > 0 {
		writeJSON(w, http.StatusBadRequest, dup)
		return
	}
	c.ID = s.nextID
	s.nextID++
	s.children = append(s.children, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *API) listNotifications(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]model.Notification(nil), s.notifications...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *API) patchNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	var in struct {
		IsRead *bool `json:"is_read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.IsRead == nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"is_read": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = *in.IsRead
			writeJSON(w, http.StatusOK, s.notifications[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (s *API) listVaccinations(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "child"), 10, 64)
	s.mu.Lock()
	out := append([]model.Vaccination{}, s.vaccinations[id]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *API) listPrescriptions(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "child"), 10, 64)
	s.mu.Lock()
	out := append([]model.Document{}, s.documents[id]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
