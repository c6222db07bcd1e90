package handlers

import (
	"context"
	"net/http"
	"testing"
)

// loginCookie authenticates against the test password and returns the
// session cookie.
func loginCookie(t *testing.T, h *Handlers) *http.Cookie {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/moderator/login", LoginRequest{Password: "test-password"})
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == "cubecomp_session" {
			return c
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newTestHandlers(t)

	rr := doJSON(t, h, http.MethodPost, "/api/moderator/login", LoginRequest{Password: "wrong"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandlers(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/moderator/pending"},
		{http.MethodPost, "/api/moderator/moderate"},
		{http.MethodPost, "/api/moderator/close-competition"},
		{http.MethodPost, "/api/competitors"},
		{http.MethodGet, "/api/moderator/settings"},
	}
	for _, p := range paths {
		rr := doJSON(t, h, p.method, p.path, nil)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, rr.Code)
		}
	}
}

func TestLogout_InvalidatesSession(t *testing.T) {
	h, _ := newTestHandlers(t)
	cookie := loginCookie(t, h)

	if rr := doJSON(t, h, http.MethodGet, "/api/moderator/pending", nil, cookie); rr.Code != http.StatusOK {
		t.Fatalf("authed request failed: %d", rr.Code)
	}

	if rr := doJSON(t, h, http.MethodPost, "/api/moderator/logout", nil, cookie); rr.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rr.Code)
	}

	if rr := doJSON(t, h, http.MethodGet, "/api/moderator/pending", nil, cookie); rr.Code != http.StatusUnauthorized {
		t.Errorf("stale session accepted: %d", rr.Code)
	}
}

func submitBestSet(t *testing.T, h *Handlers, cid int64, times []int) {
	t.Helper()
	for i, centis := range times {
		rr := doJSON(t, h, http.MethodPost, "/api/attempts", AttemptSubmitRequest{
			EventID: "333", CompetitorID: cid, Index: i, Centis: centis,
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("attempt %d: %d %s", i, rr.Code, rr.Body.String())
		}
	}
}

func TestModerationFlow(t *testing.T) {
	h, repo := newTestHandlers(t)
	cookie := loginCookie(t, h)
	cid, _ := repo.CreateCompetitor(context.Background(), "Ada", "")

	// Seed an official record so the submitted set only half-improves it:
	// the single beats 650, the average does not beat 720.
	rr := doJSON(t, h, http.MethodPost, "/api/competitors/"+itoa64(cid)+"/federation-import", FederationImportRequest{
		EventID: "333", SingleCentis: 650, Aggregate: 720,
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("federation import: %d %s", rr.Code, rr.Body.String())
	}

	submitBestSet(t, h, cid, []int{600, 950, 960, 970, 940})

	rr = doJSON(t, h, http.MethodGet, "/api/moderator/pending", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("pending: %d", rr.Code)
	}
	var pending []SubmissionResponse
	decodeBody(t, rr, &pending)
	if len(pending) != 1 {
		t.Fatalf("pending = %+v, want 1 item", pending)
	}
	if pending[0].EventID != "333" || pending[0].State != "needs_review" {
		t.Errorf("pending[0] = %+v", pending[0])
	}

	rr = doJSON(t, h, http.MethodPost, "/api/moderator/moderate", ModerateRequest{
		EventID: "333", CompetitorID: cid, Approve: true,
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("moderate: %d %s", rr.Code, rr.Body.String())
	}
	var moderated SubmissionResponse
	decodeBody(t, rr, &moderated)
	if moderated.State != "approved" {
		t.Errorf("state = %q", moderated.State)
	}

	// moderation happens exactly once
	rr = doJSON(t, h, http.MethodPost, "/api/moderator/moderate", ModerateRequest{
		EventID: "333", CompetitorID: cid, Approve: true,
	}, cookie)
	if rr.Code != http.StatusConflict {
		t.Errorf("re-moderate: %d, want 409", rr.Code)
	}
}

func TestCloseCompetition(t *testing.T) {
	h, repo := newTestHandlers(t)
	cookie := loginCookie(t, h)
	cid, _ := repo.CreateCompetitor(context.Background(), "Ada", "")
	submitBestSet(t, h, cid, []int{900, 850, 910, 870, 880})

	rr := doJSON(t, h, http.MethodPost, "/api/moderator/close-competition", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("close: %d %s", rr.Code, rr.Body.String())
	}
	var closed CompetitionResponse
	decodeBody(t, rr, &closed)
	if closed.Active {
		t.Error("closed competition still reported active")
	}

	// The next active competition has rolled
	rr = doJSON(t, h, http.MethodGet, "/api/competition", nil)
	var next CompetitionResponse
	decodeBody(t, rr, &next)
	if next.Number != closed.Number+1 {
		t.Errorf("next = %d, want %d", next.Number, closed.Number+1)
	}
}

func TestCompetitorCRUD(t *testing.T) {
	h, _ := newTestHandlers(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, http.MethodPost, "/api/competitors", CompetitorCreateRequest{
		Name: "Ada Lovelace", WcaID: "2019LOVE01",
	}, cookie)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rr.Code, rr.Body.String())
	}
	var created CompetitorResponse
	decodeBody(t, rr, &created)

	rr = doJSON(t, h, http.MethodPut, "/api/competitors/"+itoa64(created.ID), CompetitorUpdateRequest{
		Name: "Ada L", WcaID: "2019LOVE01",
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/competitors/"+itoa64(created.ID), nil)
	var got CompetitorResponse
	decodeBody(t, rr, &got)
	if got.Name != "Ada L" {
		t.Errorf("name = %q", got.Name)
	}

	rr = doJSON(t, h, http.MethodDelete, "/api/competitors/"+itoa64(created.ID), nil, cookie)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/competitors/"+itoa64(created.ID), nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("get after delete: %d", rr.Code)
	}
}

func TestCreateCompetitor_EmptyName(t *testing.T) {
	h, _ := newTestHandlers(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, http.MethodPost, "/api/competitors", CompetitorCreateRequest{Name: "  "}, cookie)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	h, _ := newTestHandlers(t)
	cookie := loginCookie(t, h)

	rr := doJSON(t, h, http.MethodPut, "/api/moderator/settings", SettingsUpdateRequest{
		BaseURL: "https://cube.example.com",
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("put settings: %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/moderator/settings", nil, cookie)
	var resp SettingsResponse
	decodeBody(t, rr, &resp)
	if resp.BaseURL != "https://cube.example.com" {
		t.Errorf("base_url = %q", resp.BaseURL)
	}
}

func TestRecordsQR(t *testing.T) {
	h, repo := newTestHandlers(t)
	cookie := loginCookie(t, h)
	cid, _ := repo.CreateCompetitor(context.Background(), "Ada", "")

	// QR generation needs a configured base URL
	rr := doJSON(t, h, http.MethodGet, "/api/competitors/"+itoa64(cid)+"/records/qr", nil)
	if rr.Code == http.StatusOK {
		t.Fatal("expected failure without a base URL")
	}

	doJSON(t, h, http.MethodPut, "/api/moderator/settings", SettingsUpdateRequest{
		BaseURL: "https://cube.example.com",
	}, cookie)

	rr = doJSON(t, h, http.MethodGet, "/api/competitors/"+itoa64(cid)+"/records/qr", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("qr: %d %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
}

func TestFederationImport(t *testing.T) {
	h, repo := newTestHandlers(t)
	cookie := loginCookie(t, h)
	cid, _ := repo.CreateCompetitor(context.Background(), "Ada", "2019LOVE01")

	rr := doJSON(t, h, http.MethodPost, "/api/competitors/"+itoa64(cid)+"/federation-import", FederationImportRequest{
		EventID: "333", SingleCentis: 650, Aggregate: 720,
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("import: %d %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Single struct {
			Centis int `json:"centis"`
		} `json:"single"`
		SingleComp int `json:"single_comp"`
	}
	decodeBody(t, rr, &resp)
	if resp.Single.Centis != 650 || resp.SingleComp != 0 {
		t.Errorf("imported = %+v", resp)
	}
}
