package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/and161185/kid-clinic/internal/clinictest"
	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/metrics"
	"github.com/and161185/kid-clinic/internal/model"
	"github.com/and161185/kid-clinic/internal/prefs"
	"github.com/and161185/kid-clinic/internal/validate"
)

func newClient(t *testing.T, withToken bool, opts ...Option) (*Client, *clinictest.Server, prefs.Store) {
	t.Helper()
	srv := clinictest.New(t)
	store := prefs.NewMemory()
	if withToken {
		require.NoError(t, store.Set(context.Background(), prefs.KeyAccessToken, clinictest.Token))
	}
	return New(srv.URL, 2*time.Second, store, opts...), srv, store
}

func TestCall_NoTokenSendsNothing(t *testing.T) {
	c, srv, _ := newClient(t, false)

	o := c.Call(context.Background(), MethodGet, "/notifications/", nil)

	require.Equal(t, Unauthorized, o.Kind)
	require.Zero(t, o.Status)
	require.ErrorIs(t, o.Err, errs.ErrUnauthorized)
	require.Empty(t, srv.Requests())
}

func TestCall_SuccessSetsHeaders(t *testing.T) {
	c, srv, _ := newClient(t, true)

	o := c.Call(context.Background(), MethodGet, "/notifications/", nil)
	require.Equal(t, Success, o.Kind, "err: %v", o.Err)
	require.Equal(t, http.StatusOK, o.Status)
	require.Nil(t, o.FieldErrors)
	require.NoError(t, o.Err)

	var got []model.Notification
	require.NoError(t, Decode(o, &got))
	require.Len(t, got, 2)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, "Bearer "+clinictest.Token, reqs[0].Authorization)
	require.Equal(t, "application/json", reqs[0].ContentType)
	require.NotEmpty(t, reqs[0].RequestID)
}

func TestCallPublic_NoAuthorizationHeader(t *testing.T) {
	c, srv, _ := newClient(t, true)

	o := c.CallPublic(context.Background(), MethodPost, "/verify-otp/", map[string]string{"otp": clinictest.OTP})
	require.True(t, o.OK(), "err: %v", o.Err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	require.Empty(t, reqs[0].Authorization)
	require.JSONEq(t, `{"otp":"123456"}`, string(reqs[0].Body))
}

func TestCall_ValidationFailed(t *testing.T) {
	cases := []struct {
		name string
		body string
		want validate.Errors
	}{
		{"single field", `{"child_id_number":["already exists"]}`, validate.Errors{"child_id_number": "already exists"}},
		{"joined entries", `{"email":["Enter a valid email.","Too long."]}`, validate.Errors{"email": "Enter a valid email. Too long."}},
		{"string values", `{"detail":"bad","error":"Invalid OTP"}`, validate.Errors{"detail": "bad", "error": "Invalid OTP"}},
		{"not json", `oops`, validate.Errors{RawErrorKey: "oops"}},
		{"empty", ``, validate.Errors{RawErrorKey: "Bad Request"}},
		{"array body", `["x"]`, validate.Errors{RawErrorKey: `["x"]`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv, _ := newClient(t, true)
			srv.FailNext(http.StatusBadRequest, tc.body)

			o := c.Call(context.Background(), MethodPost, "/api/children/", map[string]string{})
			require.Equal(t, ValidationFailed, o.Kind)
			require.Equal(t, http.StatusBadRequest, o.Status)
			require.Equal(t, tc.want, o.FieldErrors)
			require.ErrorIs(t, o.Err, errs.ErrValidation)
			require.Nil(t, o.Payload)
		})
	}
}

func TestCall_DuplicateChildReportsFields(t *testing.T) {
	c, _, _ := newClient(t, true)
	child := model.Child{FullName: "A", NationalID: "1", URN: "2", Sex: model.SexMale, DateOfBirth: "2020-01-01"}

	first := c.Call(context.Background(), MethodPost, "/api/children/", child)
	require.Equal(t, Success, first.Kind)
	require.Equal(t, http.StatusCreated, first.Status)

	second := c.Call(context.Background(), MethodPost, "/api/children/", child)
	require.Equal(t, ValidationFailed, second.Kind)
	require.Equal(t, []string{model.FieldURN, model.FieldNationalID}, second.FieldErrors.Fields())
}

func TestCall_UnauthorizedKeepsToken(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c, srv, store := newClient(t, true)
		srv.FailNext(status, `{"detail":"nope"}`)

		o := c.Call(context.Background(), MethodGet, "/notifications/", nil)
		require.Equal(t, Unauthorized, o.Kind)
		require.Equal(t, status, o.Status)
		require.ErrorIs(t, o.Err, errs.ErrUnauthorized)

		tok, ok := prefs.Token(context.Background(), store)
		require.True(t, ok)
		require.Equal(t, clinictest.Token, tok)
	}
}

func TestCall_RejectedToken(t *testing.T) {
	c, srv, _ := newClient(t, true)
	srv.SetToken("rotated")

	o := c.Call(context.Background(), MethodGet, "/notifications/", nil)
	require.Equal(t, Unauthorized, o.Kind)
	require.Equal(t, http.StatusUnauthorized, o.Status)
}

func TestCall_OtherStatusesFail(t *testing.T) {
	c, srv, _ := newClient(t, true)

	srv.FailNext(http.StatusInternalServerError, `{"detail":"boom"}`)
	o := c.Call(context.Background(), MethodGet, "/notifications/", nil)
	require.Equal(t, Failed, o.Kind)
	require.Equal(t, http.StatusInternalServerError, o.Status)
	require.Error(t, o.Err)

	o = c.Call(context.Background(), MethodPatch, "/notifications/99/", map[string]bool{"is_read": true})
	require.Equal(t, Failed, o.Kind)
	require.ErrorIs(t, o.Err, errs.ErrNotFound)
}

func TestCall_TimeoutIsNetworkError(t *testing.T) {
	srv := clinictest.New(t)
	store := prefs.NewMemory()
	require.NoError(t, store.Set(context.Background(), prefs.KeyAccessToken, clinictest.Token))
	srv.SetDelay(time.Second)

	c := New(srv.URL, 50*time.Millisecond, store)
	o := c.Call(context.Background(), MethodGet, "/notifications/", nil)
	require.Equal(t, NetworkError, o.Kind)
	require.Zero(t, o.Status)
	require.ErrorIs(t, o.Err, errs.ErrNetwork)
}

func TestCall_CanceledContext(t *testing.T) {
	c, _, _ := newClient(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := c.Call(ctx, MethodGet, "/notifications/", nil)
	require.Equal(t, NetworkError, o.Kind)
	require.ErrorIs(t, o.Err, errs.ErrNetwork)
}

func TestCall_ConnectionRefused(t *testing.T) {
	srv := clinictest.New(t)
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, prefs.NewMemory())
	o := c.CallPublic(context.Background(), MethodPost, "/register/", model.Registration{})
	require.Equal(t, NetworkError, o.Kind)
}

func TestCall_UnencodableBody(t *testing.T) {
	c, srv, _ := newClient(t, true)

	o := c.Call(context.Background(), MethodPost, "/api/children/", map[string]any{"x": make(chan int)})
	require.Equal(t, Failed, o.Kind)
	require.ErrorIs(t, o.Err, errs.ErrInvalidInput)
	require.Empty(t, srv.Requests())
}

func TestCall_RequestIDsAreUnique(t *testing.T) {
	c, srv, _ := newClient(t, true)
	for i := 0; i < 5; i++ {
		require.True(t, c.Call(context.Background(), MethodGet, "/notifications/", nil).OK())
	}
	seen := map[string]bool{}
	for _, r := range srv.Requests() {
		require.False(t, seen[r.RequestID], "duplicate id %s", r.RequestID)
		seen[r.RequestID] = true
	}
	require.Len(t, seen, 5)
}

func TestCall_MetricsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := metrics.New(prometheus.NewRegistry())
	c, srv, _ := newClient(t, true, WithLogger(zap.New(core)), WithMetrics(m))

	require.True(t, c.Call(context.Background(), MethodGet, "/notifications/", nil).OK())
	srv.FailNext(http.StatusInternalServerError, `{}`)
	c.Call(context.Background(), MethodGet, "/notifications/", nil)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Outcomes.WithLabelValues("success", "GET")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Outcomes.WithLabelValues("failed", "GET")))

	require.Equal(t, 2, logs.FilterMessage("call").Len())
	for _, e := range logs.All() {
		require.NotContains(t, e.Message, clinictest.Token)
		for k, v := range e.ContextMap() {
			require.NotContains(t, strings.ToLower(k), "token")
			if s, ok := v.(string); ok {
				require.NotContains(t, s, clinictest.Token)
			}
		}
	}
}

func TestDecode(t *testing.T) {
	var v []model.Vaccination

	err := Decode(Outcome{Kind: Success, Payload: []byte(`{"not":"a list"}`)}, &v)
	require.ErrorIs(t, err, errs.ErrUnexpectedResponse)

	err = Decode(Outcome{Kind: Success}, &v)
	require.ErrorIs(t, err, errs.ErrUnexpectedResponse)

	failed := Outcome{Kind: Unauthorized, Err: errs.ErrUnauthorized}
	require.ErrorIs(t, Decode(failed, &v), errs.ErrUnauthorized)

	require.NoError(t, Decode(Outcome{Kind: Success, Payload: []byte(`[{"id":1,"Vaccination_name":"BCG","Vaccination_date":"2020-01-01"}]`)}, &v))
	require.Equal(t, []model.Vaccination{{ID: 1, Name: "BCG", Date: "2020-01-01"}}, v)

	u := AsUnexpected(Outcome{Kind: Success, Status: 200}, errors.New("bad"))
	require.Equal(t, Failed, u.Kind)
	require.Equal(t, 200, u.Status)
	require.ErrorIs(t, u.Err, errs.ErrUnexpectedResponse)
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "parent-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)
	require.Equal(t, "parent-1", info.Subject)
	require.True(t, info.ExpiresAt.Equal(exp))
	require.False(t, info.Expired(time.Now()))
	require.True(t, info.Expired(exp.Add(time.Second)))

	simple, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 42}).SignedString([]byte("k"))
	require.NoError(t, err)
	info, err = InspectToken(simple)
	require.NoError(t, err)
	require.Equal(t, "42", info.Subject)
	require.True(t, info.ExpiresAt.IsZero())
	require.False(t, info.Expired(time.Now()))

	_, err = InspectToken("not-a-token")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}
