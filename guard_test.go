package routeaccess

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cccteam/httpio"
	"github.com/cccteam/routeaccess/approutes"
	"github.com/cccteam/routeaccess/mock/mock_cookie"
	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
	"github.com/cccteam/routeaccess/sessionstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

const cookieKey = "Rsgb6WsDvBsMQ5IJr2WJjVLCPO+o9WW6SdVktdaaq9O0WFA0Hc/EmJeOwCGV6LIqG8ue3iSZ/lycpv8ZNKvWjWU42hZnlO15vYANZG89R1ncjmu4KStldFuP/r0RFhZa"

func storeWith(s sessioninfo.Session) *sessionstore.Store {
	store := sessionstore.New()
	store.Replace(s)

	return store
}

// targetHandler writes the resolved target as JSON.
func targetHandler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, ok := TargetFromCtx(r.Context())
		if !ok {
			t.Error("TargetFromCtx() found = false, want true")
		}
		if err := json.NewEncoder(w).Encode(target); err != nil {
			t.Errorf("json.Encoder.Encode() = %v", err)
		}
	})
}

func TestGuard_Protect(t *testing.T) {
	t.Parallel()

	routes := approutes.New(language.English)

	tests := []struct {
		name         string
		route        routetypes.Descriptor
		session      sessioninfo.Session
		path         string
		prepare      func(c *mock_cookie.MockHandler)
		wantStatus   int
		wantLocation string
		wantTarget   *Target
	}{
		{
			name:    "anonymous is sent to login",
			route:   routes.Route(approutes.OrderDetail),
			session: sessioninfo.Anonymous(),
			path:    "/orders/17/?tab=items",
			prepare: func(c *mock_cookie.MockHandler) {
				c.EXPECT().WriteReturnURL(gomock.Any(), "/orders/17/?tab=items").Return(nil)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:    "failure writing return url",
			route:   routes.Route(approutes.Orders),
			session: sessioninfo.Anonymous(),
			path:    "/orders/",
			prepare: func(c *mock_cookie.MockHandler) {
				c.EXPECT().WriteReturnURL(gomock.Any(), "/orders/").Return(errors.New("encode failure"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "moderator is forbidden from wish list",
			route:      routes.Route(approutes.WishList),
			session:    moderator(),
			path:       "/wishlist/",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "customer passes through",
			route:      routes.Route(approutes.OrderDetail),
			session:    customer(),
			path:       "/orders/17/",
			wantStatus: http.StatusOK,
			wantTarget: &Target{Path: "/orders/17/", Title: "Order details"},
		},
		{
			name:       "escaped parameter is round tripped",
			route:      routes.Route(approutes.BookDetail),
			session:    sessioninfo.Anonymous(),
			path:       "/books/a%2Fb/",
			wantStatus: http.StatusOK,
			wantTarget: &Target{Path: "/books/a%2Fb/", Title: "Book details"},
		},
		{
			name:    "authenticated visitor returns to stored path",
			route:   routes.Route(approutes.Login),
			session: customer(),
			path:    "/login/",
			prepare: func(c *mock_cookie.MockHandler) {
				c.EXPECT().ReadReturnURL(gomock.Any()).Return("/checkout/", true)
				c.EXPECT().ClearReturnURL(gomock.Any())
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/checkout/",
		},
		{
			name:    "authenticated visitor without stored path lands home",
			route:   routes.Route(approutes.Register),
			session: customer(),
			path:    "/register/",
			prepare: func(c *mock_cookie.MockHandler) {
				c.EXPECT().ReadReturnURL(gomock.Any()).Return("", false)
				c.EXPECT().ClearReturnURL(gomock.Any())
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			c := mock_cookie.NewMockHandler(ctrl)
			if tt.prepare != nil {
				tt.prepare(c)
			}

			g := &Guard{
				resolver: NewResolver(),
				source:   storeWith(tt.session),
				cookie:   c,
				handle:   httpio.Log,
			}
			router := chi.NewRouter()
			g.Handle(router, tt.route, targetHandler(t))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
			if tt.wantTarget != nil {
				var got Target
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("json.Unmarshal() = %v", err)
				}
				if diff := cmp.Diff(*tt.wantTarget, got); diff != "" {
					t.Errorf("target mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

// swappedSource returns first on the first read and then for every read after.
type swappedSource struct {
	mu    sync.Mutex
	reads int
	first sessioninfo.Session
	then  sessioninfo.Session
}

func (s *swappedSource) Session(_ *http.Request) sessioninfo.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if s.reads == 1 {
		return s.first
	}

	return s.then
}

func TestGuard_ProtectReadsSessionOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := mock_cookie.NewMockHandler(ctrl)
	c.EXPECT().WriteReturnURL(gomock.Any(), "/wishlist/").Return(nil)

	src := &swappedSource{first: sessioninfo.Anonymous(), then: customer()}
	g := &Guard{
		resolver: NewResolver(),
		source:   src,
		cookie:   c,
		handle:   httpio.Log,
	}
	router := chi.NewRouter()
	g.Handle(router, approutes.New(language.English).Route(approutes.WishList), targetHandler(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/", http.NoBody))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d, body = %s", w.Code, http.StatusFound, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != "/login" {
		t.Errorf("Location = %q, want %q", got, "/login")
	}
	if src.reads != 1 {
		t.Errorf("session reads = %d, want 1", src.reads)
	}
}

func TestGuard_ProtectMissingParameter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := &Guard{
		resolver: NewResolver(),
		source:   contextSource{},
		cookie:   mock_cookie.NewMockHandler(ctrl),
		handle:   httpio.Log,
	}
	route := routetypes.Descriptor{Name: "item", PathTemplate: "/items/:itemId/", Visibility: routetypes.Public}

	router := chi.NewRouter()
	router.With(g.Protect(route)).Get("/items/", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("handler called, want resolve failure")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/", http.NoBody))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestGuard_ProtectReadsSessionFromContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := &Guard{
		resolver: NewResolver(),
		source:   contextSource{},
		cookie:   mock_cookie.NewMockHandler(ctrl),
		handle:   httpio.Log,
	}
	route := approutes.New(language.English).Route(approutes.Profile)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(sessioninfo.NewCtx(r.Context(), customer())))
		})
	})
	g.Handle(router, route, targetHandler(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/", http.NoBody))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGuard_NavLinks(t *testing.T) {
	t.Parallel()

	routes := approutes.New(language.English)
	nav := []routetypes.Descriptor{
		routes.Route(approutes.Home),
		routes.Route(approutes.BookDetail),
		routes.Route(approutes.WishList),
		routes.Route(approutes.Login),
		routes.Route(approutes.Moderation),
	}

	tests := []struct {
		name    string
		session sessioninfo.Session
		want    []Link
	}{
		{
			name:    "anonymous",
			session: sessioninfo.Anonymous(),
			want: []Link{
				{Name: "home", Target: Target{Path: "/", Title: "Home"}},
				{Name: "login", Target: Target{Path: "/login/", Title: "Login"}},
			},
		},
		{
			name:    "moderator",
			session: moderator(),
			want: []Link{
				{Name: "home", Target: Target{Path: "/", Title: "Home"}},
				{Name: "moderation", Target: Target{Path: "/moderation/", Title: "Moderation"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			g := &Guard{
				resolver: NewResolver(),
				source:   storeWith(tt.session),
				cookie:   mock_cookie.NewMockHandler(ctrl),
				handle:   httpio.Log,
			}

			w := httptest.NewRecorder()
			g.NavLinks(nav...).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nav", http.NoBody))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			var got []Link
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("json.Unmarshal() = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NavLinks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewGuard(t *testing.T) {
	t.Parallel()

	var logged bool
	logHandler := func(h func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			logged = true
			_ = h(w, r)
		}
	}
	store := storeWith(customer())

	g, err := NewGuard(NewResolver(), cookieKey,
		WithSessionSource(store),
		WithLogHandler(logHandler),
		WithCookieDomain("example.com"),
		WithNavCookieName("RETURN"),
	)
	if err != nil {
		t.Fatalf("NewGuard() error = %v", err)
	}
	if g.source != store {
		t.Error("NewGuard() did not apply WithSessionSource")
	}

	w := httptest.NewRecorder()
	g.NavLinks().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nav", http.NoBody))
	if !logged {
		t.Error("NewGuard() did not apply WithLogHandler")
	}

	if _, err := NewGuard(NewResolver(), "too-short"); err == nil {
		t.Error("NewGuard() with short key error = nil, want error")
	}
}
