package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMatchLocale(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "", want: LocaleEN},
		{raw: "pt-BR,pt;q=0.9,en;q=0.8", want: LocalePT},
		{raw: "pt", want: LocalePT},
		{raw: "en-GB", want: LocaleEN},
		{raw: "ja-JP", want: LocaleEN},
		{raw: "%%%", want: LocaleEN},
	}
	for _, tc := range cases {
		if got := MatchLocale(tc.raw); got != tc.want {
			t.Fatalf("MatchLocale(%q) want %s got %s", tc.raw, tc.want, got)
		}
	}
}

func TestResolveLocalePrefersQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	c.Request.Header.Set("Accept-Language", "en-US")

	if got := ResolveLocale(c); got != LocalePT {
		t.Fatalf("query lang should win, got %s", got)
	}
}

func TestTFallsBack(t *testing.T) {
	if got := T("xx-XX", "error.login_invalid"); got != "email/nickname or password incorrect" {
		t.Fatalf("unknown locale should use default catalog, got %q", got)
	}
	if got := T(LocaleEN, "error.no_such_key"); got != "error.no_such_key" {
		t.Fatalf("unknown key should echo key, got %q", got)
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	for key := range catalogs[LocaleEN] {
		if _, ok := catalogs[LocalePT][key]; !ok {
			t.Fatalf("pt-BR catalog missing key %s", key)
		}
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf(LocaleEN, "error.validation_min_length", "senha", "6")
	if got != "senha must be at least 6 characters" {
		t.Fatalf("unexpected message %q", got)
	}
}
