// Package session keeps per-visitor state in a signed cookie.
//
// The cookie carries an HS256 JWT whose claims hold the logged-in user,
// the cart and pending flash messages. It is signed, not encrypted: the
// client can read it but cannot change it.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"grocer/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const contextKey = "session"

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Session struct {
	UserID   int      `json:"user_id,omitempty"`
	Username string   `json:"username,omitempty"`
	IsAdmin  bool     `json:"is_admin,omitempty"`
	Cart     []string `json:"cart,omitempty"`
	Flashes  []Flash  `json:"flashes,omitempty"`

	dirty bool
	m     *Manager
}

// LoggedIn reports whether a user id is present.
func (s *Session) LoggedIn() bool { return s.UserID != 0 }

// Login replaces the identity fields; the cart is kept.
func (s *Session) Login(u model.User) {
	s.UserID = u.ID
	s.Username = u.Username
	s.IsAdmin = u.IsAdmin
	s.dirty = true
}

// Clear drops everything, including the cart.
func (s *Session) Clear() {
	*s = Session{dirty: true}
}

// MaxCartItems 購物車品項上限
const MaxCartItems = 50

// 瀏覽器單一 cookie 約 4096 bytes，保留屬性所需空間
const maxTokenBytes = 3800

var ErrCartFull = errors.New("cart is full")

// AddToCart appends name. It returns ErrCartFull and leaves the cart as it
// was when the cart holds MaxCartItems or the signed cookie would grow past
// what browsers keep.
func (s *Session) AddToCart(name string) error {
	if len(s.Cart) >= MaxCartItems {
		return ErrCartFull
	}
	s.Cart = append(s.Cart, name)
	if s.m != nil && !s.m.fits(s) {
		s.Cart = s.Cart[:len(s.Cart)-1]
		return ErrCartFull
	}
	s.dirty = true
	return nil
}

// CartItems never returns nil so it encodes as [].
func (s *Session) CartItems() []string {
	if s.Cart == nil {
		return []string{}
	}
	return s.Cart
}

func (s *Session) EmptyCart() {
	s.Cart = nil
	s.dirty = true
}

func (s *Session) AddFlash(kind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
	s.dirty = true
}

// PopFlashes returns pending flashes and removes them.
func (s *Session) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	f := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return f
}

func (s *Session) Dirty() bool { return s.dirty }

func (s *Session) empty() bool {
	return s.UserID == 0 && s.Username == "" && !s.IsAdmin && len(s.Cart) == 0 && len(s.Flashes) == 0
}

type claims struct {
	Session
	jwt.RegisteredClaims
}

type Options struct {
	CookieName string
	Secret     []byte
	TTL        time.Duration
	Secure     bool
}

type Manager struct {
	opts Options
	now  func() time.Time
}

var ErrInvalidSession = errors.New("invalid session")

func NewManager(opts Options) (*Manager, error) {
	if len(opts.Secret) == 0 {
		return nil, fmt.Errorf("session secret is empty")
	}
	if opts.CookieName == "" {
		opts.CookieName = "grocer_session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 7 * 24 * time.Hour
	}
	return &Manager{opts: opts, now: time.Now}, nil
}

func (m *Manager) CookieName() string { return m.opts.CookieName }

// Encode 將 session 簽成 JWT
func (m *Manager) Encode(s *Session) (string, error) {
	now := m.now()
	c := claims{
		Session: *s,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.opts.TTL)),
		},
	}
	c.Session.dirty = false
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.opts.Secret)
}

func (m *Manager) fits(s *Session) bool {
	token, err := m.Encode(s)
	return err == nil && len(token) <= maxTokenBytes
}

// Decode 驗證簽章與到期時間並還原 session
func (m *Manager) Decode(token string) (*Session, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.opts.Secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidSession
	}
	s := c.Session
	return &s, nil
}

// Middleware loads the session before the handler and re-signs the cookie
// just before the response header is written if the handler changed it.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := &Session{}
			if ck, err := c.Cookie(m.opts.CookieName); err == nil && ck.Value != "" {
				if decoded, err := m.Decode(ck.Value); err == nil {
					s = decoded
				} else {
					// 簽章錯誤或過期，回應時清掉 cookie
					s.dirty = true
				}
			}
			s.m = m
			c.Set(contextKey, s)
			c.Response().Before(func() {
				if s.dirty {
					m.writeCookie(c, s)
				}
			})
			return next(c)
		}
	}
}

func (m *Manager) writeCookie(c echo.Context, s *Session) {
	ck := &http.Cookie{
		Name:     m.opts.CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.empty() {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		c.SetCookie(ck)
		return
	}
	token, err := m.Encode(s)
	if err != nil {
		c.Logger().Errorf("sign session: %v", err)
		return
	}
	ck.Value = token
	ck.Expires = m.now().Add(m.opts.TTL)
	c.SetCookie(ck)
}

// FromContext returns the request session. Outside the middleware it
// returns a fresh session stored on the context so later calls see it.
func FromContext(c echo.Context) *Session {
	if s, ok := c.Get(contextKey).(*Session); ok {
		return s
	}
	s := &Session{}
	c.Set(contextKey, s)
	return s
}
