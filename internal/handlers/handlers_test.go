package handlers_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanjx/workouthub-backend/internal/handlers"
	"github.com/rohanjx/workouthub-backend/internal/routes"
	"github.com/rohanjx/workouthub-backend/internal/services"
	"github.com/rohanjx/workouthub-backend/internal/store"
	"github.com/rohanjx/workouthub-backend/internal/templates"
)

const testSecret = "test-secret-key"

func newTestServer(t *testing.T) (*httptest.Server, *store.MemUserStore) {
	t.Helper()

	users := store.NewMemUserStore()
	workouts := store.NewMemWorkoutStore()
	sessions := services.NewMemSessions()

	tmpl, err := templates.New()
	require.NoError(t, err)

	h := handlers.New(
		services.NewAuthService(users, sessions),
		services.NewWorkoutService(workouts),
		tmpl,
		testSecret,
		false,
	)

	r := chi.NewRouter()
	routes.SetupRoutes(r, h)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, users
}

// newBrowser returns a redirect-following client with a cookie jar, standing
// in for one user's browser session.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func noRedirect(c *http.Client) *http.Client {
	out := *c
	out.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &out
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func register(t *testing.T, c *http.Client, base, name, email, password string) *http.Response {
	t.Helper()
	resp, err := c.PostForm(base+"/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, c *http.Client, base, email, password string) *http.Response {
	t.Helper()
	resp, err := c.PostForm(base+"/", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body(t, resp))
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	ts, _ := newTestServer(t)
	c := noRedirect(&http.Client{})

	for _, path := range []string{"/home", "/add", "/workout/Squat", "/logout"} {
		resp, err := c.Get(ts.URL + path)
		require.NoError(t, err)
		b := body(t, resp)

		assert.Equal(t, http.StatusFound, resp.StatusCode, "path %s", path)
		assert.Equal(t, "/", resp.Header.Get("Location"), "path %s", path)
		assert.NotContains(t, b, "Welcome", "path %s must not leak personalized data", path)
	}
}

func TestRegisterThenLoginFlow(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newBrowser(t)

	resp := register(t, c, ts.URL, "Alice", "alice@example.com", "pw123456")
	b := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, b, "Registered! Please log in.")

	resp = login(t, c, ts.URL, "alice@example.com", "pw123456")
	b = body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, b, "Welcome, Alice")
	assert.Contains(t, b, "No workouts logged yet.")
}

func TestLoginFailures(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newBrowser(t)
	body(t, register(t, c, ts.URL, "Alice", "alice@example.com", "rightpass"))

	resp := login(t, c, ts.URL, "alice@example.com", "wrongpass")
	assert.Contains(t, body(t, resp), "Wrong Password!!")

	resp = login(t, c, ts.URL, "ghost@example.com", "whatever")
	assert.Contains(t, body(t, resp), "Email does not exist, try again!")

	// Neither failure established a session
	resp, err := noRedirect(c).Get(ts.URL + "/home")
	require.NoError(t, err)
	body(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts, users := newTestServer(t)
	c := newBrowser(t)

	body(t, register(t, c, ts.URL, "Alice", "alice@example.com", "first"))
	require.Equal(t, 1, users.Count())

	resp := register(t, c, ts.URL, "Impostor", "alice@example.com", "second")
	b := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, b, "already exists")
	assert.Equal(t, 1, users.Count(), "duplicate registration must not mutate the store")
}

func TestLogWorkoutAndOwnershipIsolation(t *testing.T) {
	ts, _ := newTestServer(t)
	base := ts.URL

	alice := newBrowser(t)
	body(t, register(t, alice, base, "Alice", "alice@example.com", "pw123456"))
	body(t, login(t, alice, base, "alice@example.com", "pw123456"))

	resp, err := alice.PostForm(base+"/add", url.Values{
		"exercise": {"squat"},
		"date":     {"2024-01-01"},
		"sets":     {"5"},
		"reps":     {"5"},
		"kgs":      {"100"},
	})
	require.NoError(t, err)
	b := body(t, resp)
	assert.Contains(t, b, "Squat", "exercise name must be title-cased on the history page")
	assert.Contains(t, b, "2024-01-01")
	assert.Contains(t, b, "100")

	// Logout returns Alice to the login page
	resp, err = alice.Get(base + "/logout")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Login")

	bob := newBrowser(t)
	body(t, register(t, bob, base, "Bob", "bob@example.com", "pw654321"))
	body(t, login(t, bob, base, "bob@example.com", "pw654321"))

	resp, err = bob.Get(base + "/home")
	require.NoError(t, err)
	b = body(t, resp)
	assert.Contains(t, b, "Welcome, Bob")
	assert.Contains(t, b, "No workouts logged yet.")
	assert.NotContains(t, b, "Squat", "one user's entries must be invisible to another")
}

func TestWorkoutRoutePrefilledExercise(t *testing.T) {
	ts, _ := newTestServer(t)
	base := ts.URL

	c := newBrowser(t)
	body(t, register(t, c, base, "Alice", "alice@example.com", "pw123456"))
	body(t, login(t, c, base, "alice@example.com", "pw123456"))

	resp, err := c.Get(base + "/workout/bench%20press")
	require.NoError(t, err)
	b := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, b, "Log Bench Press", "path-derived name must be normalized on the form")

	resp, err = c.PostForm(base+"/workout/bench%20press", url.Values{
		"date": {"2024-01-02"},
		"sets": {"3"},
		"reps": {"10"},
		"kgs":  {"50.0"},
	})
	require.NoError(t, err)
	b = body(t, resp)
	assert.Contains(t, b, "Bench Press")
	assert.Contains(t, b, "2024-01-02")
}

func TestAddValidationRedisplaysForm(t *testing.T) {
	ts, _ := newTestServer(t)
	base := ts.URL

	c := newBrowser(t)
	body(t, register(t, c, base, "Alice", "alice@example.com", "pw123456"))
	body(t, login(t, c, base, "alice@example.com", "pw123456"))

	resp, err := c.PostForm(base+"/add", url.Values{
		"exercise": {"deadlift"},
		"date":     {"2024-01-01"},
		"sets":     {"0"},
		"reps":     {"5"},
		"kgs":      {"120"},
	})
	require.NoError(t, err)
	b := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, b, "positive integer")
	assert.Contains(t, b, `value="deadlift"`, "submitted values must be redisplayed")

	// No entry was written
	resp, err = c.Get(base + "/home")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "No workouts logged yet.")
}
