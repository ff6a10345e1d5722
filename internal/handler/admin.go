package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkhach/grad-seating/internal/config"
	"github.com/mkhach/grad-seating/internal/export"
	"github.com/mkhach/grad-seating/internal/store"
	"github.com/mkhach/grad-seating/internal/utils"
)

// AdminHandler bundles the administrator surface: login and the
// occupancy export.  There is a single admin identity configured
// through the environment; no user table exists for it.
type AdminHandler struct {
	Cfg   config.Config
	Store store.TableStore
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cfg config.Config, st store.TableStore) *AdminHandler {
	if st == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Store: st}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /v1/auth/login.  Credentials are checked
// against the configured admin user and bcrypt hash; success issues
// a short-lived HS256 access token for the protected endpoints.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}
	if req.Username != h.Cfg.AdminUser || !utils.VerifyPassword(h.Cfg.AdminPassHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	access, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.AdminUser, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"access": tokenPart{Token: access.Token, Expires: access.Exp}})
}

// ExportCSV handles GET /v1/export.  It streams the current
// occupancy snapshot as CSV, one record per table.  The file is
// generated on demand and never written to disk.
func (h *AdminHandler) ExportCSV(c echo.Context) error {
	tables, err := h.Store.ReadTables(c.Request().Context())
	if err != nil {
		return writeStoreError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="seating.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteTablesCSV(c.Response(), tables)
}
