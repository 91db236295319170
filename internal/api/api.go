// Package api exposes the clinic endpoints the client uses as typed calls.
// Every call returns the session.Outcome alongside the decoded payload so screens
// can branch on the outcome kind.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/model"
	"github.com/and161185/kid-clinic/internal/session"
)

// Caller performs classified remote calls.
type Caller interface {
	Call(ctx context.Context, method, path string, body any) session.Outcome
	CallPublic(ctx context.Context, method, path string, body any) session.Outcome
	BaseURL() string
}

var _ Caller = (*session.Client)(nil)

// Clinic defines the endpoints of the clinic API.
type Clinic interface {
	// Register creates an account; the server answers by sending an OTP. Also used to resend one.
	Register(ctx context.Context, r model.Registration) (model.Message, session.Outcome)
	// VerifyOTP confirms the code sent after registration.
	VerifyOTP(ctx context.Context, code string) (model.Message, session.Outcome)
	// AddChild registers a child; duplicates come back as ValidationFailed.
	AddChild(ctx context.Context, c model.Child) (model.Child, session.Outcome)
	Notifications(ctx context.Context) ([]model.Notification, session.Outcome)
	MarkNotificationRead(ctx context.Context, id int64) session.Outcome
	Vaccinations(ctx context.Context, childID int64) ([]model.Vaccination, session.Outcome)
	// PrescriptionDocuments lists prescriptions with URL resolved against the API root.
	PrescriptionDocuments(ctx context.Context, childID int64) ([]model.Document, session.Outcome)
}

// Service implements Clinic over a Caller.
type Service struct {
	c Caller
}

var _ Clinic = (*Service)(nil)

// New constructs the service.
func New(c Caller) *Service {
	return &Service{c: c}
}

func (s *Service) Register(ctx context.Context, r model.Registration) (model.Message, session.Outcome) {
	return message(s.c.CallPublic(ctx, session.MethodPost, "/register/", r))
}

func (s *Service) VerifyOTP(ctx context.Context, code string) (model.Message, session.Outcome) {
	return message(s.c.CallPublic(ctx, session.MethodPost, "/verify-otp/", map[string]string{"otp": code}))
}

func (s *Service) AddChild(ctx context.Context, c model.Child) (model.Child, session.Outcome) {
	c.ID = 0
	o := s.c.Call(ctx, session.MethodPost, "/api/children/", c)
	if !o.OK() {
		return model.Child{}, o
	}
	var out model.Child
	if err := session.Decode(o, &out); err != nil {
		return model.Child{}, session.AsUnexpected(o, err)
	}
	return out, o
}

func (s *Service) Notifications(ctx context.Context) ([]model.Notification, session.Outcome) {
	return list[model.Notification](s.c.Call(ctx, session.MethodGet, "/notifications/", nil))
}

func (s *Service) MarkNotificationRead(ctx context.Context, id int64) session.Outcome {
	if id <= 0 {
		return session.Outcome{Kind: session.Failed, Err: fmt.Errorf("notification id %d: %w", id, errs.ErrInvalidInput)}
	}
	return s.c.Call(ctx, session.MethodPatch, fmt.Sprintf("/notifications/%d/", id), map[string]bool{"is_read": true})
}

func (s *Service) Vaccinations(ctx context.Context, childID int64) ([]model.Vaccination, session.Outcome) {
	return list[model.Vaccination](s.c.Call(ctx, session.MethodGet, fmt.Sprintf("/vaccinations/%d/", childID), nil))
}

func (s *Service) PrescriptionDocuments(ctx context.Context, childID int64) ([]model.Document, session.Outcome) {
	docs, o := list[model.Document](s.c.Call(ctx, session.MethodGet,
		fmt.Sprintf("/api/documents/child/%d/prescription/", childID), nil))
	if !o.OK() {
		return nil, o
	}
	for i := range docs {
		u, err := ResolveURL(s.c.BaseURL(), docs[i].Document)
		if err != nil {
			return nil, session.AsUnexpected(o, err)
		}
		docs[i].URL = u
	}
	return docs, o
}

// ResolveURL appends a document path returned by the API to the API root, keeping any
// path prefix of the root. Absolute URLs are returned unchanged.
func ResolveURL(base, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty document path: %w", errs.ErrInvalidInput)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("document path %q: %w", ref, err)
	}
	if r.IsAbs() {
		return r.String(), nil
	}
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("base url: %w", err)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/"), nil
}

func message(o session.Outcome) (model.Message, session.Outcome) {
	if !o.OK() {
		return model.Message{}, o
	}
	var m model.Message
	if err := session.Decode(o, &m); err != nil {
		return model.Message{}, session.AsUnexpected(o, err)
	}
	return m, o
}

func list[T any](o session.Outcome) ([]T, session.Outcome) {
	if !o.OK() {
		return nil, o
	}
	out := []T{}
	if err := session.Decode(o, &out); err != nil {
		return nil, session.AsUnexpected(o, err)
	}
	return out, o
}
