package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefaultPolicy(t *testing.T) {
	c := NewChecker(nil)

	cases := []struct {
		role, perm string
		want       bool
	}{
		{"member", "submission:create", true},
		{"member", "submission:list-own", true},
		{"member", "report:view-own", true},
		{"member", "tools:list", true},
		{"member", "report:view-all", false},
		{"member", "submission:list-all", false},
		{"admin", "submission:create", true},
		{"admin", "report:view-all", true},
		{"admin", "anything:at-all", true},
		{"", "tools:list", false},
		{"ghost", "tools:list", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestWildcardPrefix(t *testing.T) {
	c := NewChecker(map[string][]string{
		"auditor": {"report:*"},
	})
	if !c.Has("auditor", "report:view-all") {
		t.Error("prefix wildcard should match")
	}
	if c.Has("auditor", "submission:create") {
		t.Error("prefix wildcard matched outside its prefix")
	}
}

func TestAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("member", "submission:list-own", "submission:list-all") {
		t.Error("member should pass via list-own")
	}
	if c.Any("member", "report:view-all", "submission:list-all") {
		t.Error("member passed with no matching permission")
	}
	if !c.Any("admin", "report:view-all", "submission:list-all") {
		t.Error("admin should pass everything")
	}
}

func TestRequireMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	serve := func(role string, h http.Handler) int {
		req := httptest.NewRequest("GET", "/", nil)
		if role != "" {
			req = req.WithContext(WithRole(req.Context(), role))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	h := Require("submission:create")(ok)
	if code := serve("member", h); code != 200 {
		t.Errorf("member = %d", code)
	}
	if code := serve("", h); code != http.StatusForbidden {
		t.Errorf("no role = %d", code)
	}

	h = RequireAny("report:view-own", "report:view-all")(ok)
	if code := serve("member", h); code != 200 {
		t.Errorf("member any = %d", code)
	}
	h = RequireAny("report:view-all")(ok)
	if code := serve("member", h); code != http.StatusForbidden {
		t.Errorf("member view-all = %d", code)
	}
	if code := serve("admin", h); code != 200 {
		t.Errorf("admin view-all = %d", code)
	}
}
