package handler_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railswift/railswift/internal/catalog"
	"github.com/railswift/railswift/internal/config"
	"github.com/railswift/railswift/internal/handler"
	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/repository"
	"github.com/railswift/railswift/internal/router"
	"github.com/railswift/railswift/internal/store"

	_ "modernc.org/sqlite"
)

// newTestServer wires the full API against an in-memory sqlite store with
// the queue disabled and no Redis, the same shape main() builds.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	st, err := store.New(db)
	require.NoError(t, err)

	cfg := config.Config{
		Env:          "test",
		JWTSecret:    "test-secret",
		AccessTTLMin: 5,
	}
	accounts := repository.NewAccountRepo(st)
	bookings := repository.NewBookingRepo(st)
	searches := repository.NewSearchRepo(st)
	cat := catalog.New()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts), cfg.JWTSecret)
	router.RegisterBookings(e, handler.NewBookingHandler(cfg, bookings), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewCatalogHandler(cat), handler.NewSearchHandler(cat, searches))
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/auth/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User   model.User `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

const bookingBody = `{
	"train": {"id":"12951","number":"12951","name":"Mumbai Rajdhani Express","from":"Mumbai Central","to":"New Delhi","departure":"16:35","arrival":"08:35","duration":"16h 00m"},
	"selectedClass": {"type":"3A","name":"Third AC","price":1450,"available":42},
	"passengers": [{"name":"Asha","age":31,"gender":"Female","idType":"Aadhar","idNumber":"1234","seatPreference":"Lower"}],
	"date": "2026-09-14",
	"paymentMethod": "UPI"
}`

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

// TestBookingFlow walks the whole demo flow: register, duplicate register,
// login, book, list, logout, list again.
func TestBookingFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/auth/register",
		`{"name":"B","email":"a@x.com","password":"pw2"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/auth/login",
		`{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, e, "a@x.com", "pw1")

	rec = doJSON(e, http.MethodPost, "/v1/bookings", bookingBody, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "a@x.com", created.UserEmail)
	assert.Equal(t, model.StatusUpcoming, created.Status)
	assert.Equal(t, 1450, created.TotalFare, "fare derived from class price and passenger count")
	assert.True(t, strings.HasPrefix(created.ID, "TXN"))

	rec = doJSON(e, http.MethodGet, "/v1/bookings", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = doJSON(e, http.MethodPost, "/v1/auth/logout", "", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The token is still cryptographically valid, but the session it
	// shadowed is gone, so the ledger scopes to nobody.
	rec = doJSON(e, http.MethodGet, "/v1/bookings", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	list = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestBookingRequiresToken(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/v1/bookings", bookingBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(e, http.MethodGet, "/v1/bookings", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/v1/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	token := login(t, e, "a@x.com", "pw")

	rec = doJSON(e, http.MethodPost, "/v1/bookings", bookingBody, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodPost, "/v1/bookings/"+created.ID+"/cancel", "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Cancelling again succeeds and leaves the status unchanged.
	rec = doJSON(e, http.MethodPost, "/v1/bookings/"+created.ID+"/cancel", "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/bookings", "", token)
	var list []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, model.StatusCancelled, list[0].Status)
}

func TestProfile(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	token := login(t, e, "a@x.com", "pw")

	rec = doJSON(e, http.MethodGet, "/v1/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "A", me.Name)
	assert.Empty(t, me.Password)

	rec = doJSON(e, http.MethodPatch, "/v1/me",
		`{"name":"Asha","avatar":"https://example.com/a.png"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "Asha", me.Name)
	require.NotNil(t, me.Avatar)
	assert.Equal(t, "https://example.com/a.png", *me.Avatar)
}

func TestPublicCatalogRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/cities?q=mum", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cities []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	assert.Contains(t, cities, "Mumbai")

	rec = doJSON(e, http.MethodGet, "/v1/trains?from=mumbai&to=zzznoexist", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res catalog.TrainResults
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Fallback)
	assert.NotEmpty(t, res.Trains)

	rec = doJSON(e, http.MethodGet, "/v1/trains", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "origin is required")

	rec = doJSON(e, http.MethodGet, "/v1/food?category=Beverage", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var food []model.FoodItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &food))
	require.NotEmpty(t, food)
	for _, item := range food {
		assert.Equal(t, "Beverage", item.Category)
	}

	rec = doJSON(e, http.MethodGet, "/v1/offers", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/searches",
		`{"from":"Mumbai","to":"Delhi","date":"2026-09-14","passengers":2}`, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/searches/recent", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []model.SearchQuery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recent))
	require.Len(t, recent, 1)
	assert.Equal(t, "Mumbai", recent[0].From)
}
