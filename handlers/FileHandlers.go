package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/schema"
	"backend/storage"
	"backend/utils"
)

// AuthConfig carries the shared admin credential. The bearer value may be
// the raw password or a token from POST /api/login.
type AuthConfig struct {
	Password     string
	PasswordHash string
}

// signingSecret is the key tokens are signed with. The bcrypt hash, when
// configured, doubles as signing key so a weak default password never
// signs tokens.
func (cfg AuthConfig) signingSecret() string {
	if cfg.PasswordHash != "" {
		return cfg.PasswordHash
	}
	return cfg.Password
}

// AuthMiddleware rejects requests whose Authorization header is not
// "Bearer <password>" or "Bearer <valid admin token>".
func AuthMiddleware(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if utils.CheckPassword(token, cfg.Password, cfg.PasswordHash) {
			c.Next()
			return
		}
		if err := utils.ValidateAdminJWT(token, cfg.signingSecret()); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Health godoc
// @Summary      Health check
// @Description  Verifies the service is up and the credential is valid
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.OkResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.OkResponse{Ok: true})
}

// mustLang extracts the mandatory ?lang= parameter. A missing or unknown
// language is rejected instead of silently defaulting, so a write can
// never land in the wrong language's file.
func mustLang(c *gin.Context) (string, bool) {
	lang := c.Query("lang")
	if !storage.ValidLang(lang) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing or invalid lang. use ?lang=de|en"})
		return "", false
	}
	return lang, true
}

// GetFile godoc
// @Summary      Read a catalog document
// @Description  Returns the raw stored JSON of pricelist, groupinfo or labor for one language
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name  path   string  true  "pricelist | groupinfo | labor"
// @Param        lang  query  string  true  "de | en"
// @Success      200  {string}  string  "raw JSON document"
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/file/{name} [get]
func GetFile(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if !storage.ValidName(name) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid name"})
			return
		}
		lang, ok := mustLang(c)
		if !ok {
			return
		}

		raw, err := store.Read(name, lang)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error: "file not found",
					File:  name + "." + lang + ".json",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}

		// soft check only: stale documents must stay readable for recovery
		if issues, err := schema.Validate(name, raw); err != nil {
			log.Printf("[admin] stored %s.%s.json is not parseable: %v", name, lang, err)
		} else if len(issues) > 0 {
			log.Printf("[admin] stored %s.%s.json has %d schema issue(s): %s", name, lang, len(issues), schema.Summarize(issues))
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}

// PutFile godoc
// @Summary      Replace a catalog document
// @Description  Validates the body against the document schema, backs up the previous version and atomically replaces the file
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path   string  true  "pricelist | groupinfo | labor"
// @Param        lang  query  string  true  "de | en"
// @Param        body  body   object  true  "full document"
// @Success      200  {object}  models.OkResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/file/{name} [put]
func PutFile(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if !storage.ValidName(name) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid name"})
			return
		}
		lang, ok := mustLang(c)
		if !ok {
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "cannot read body"})
			return
		}

		var body any
		if err := json.Unmarshal(raw, &body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid json", Detail: err.Error()})
			return
		}
		switch body.(type) {
		case map[string]any, []any:
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "body must be a JSON object or array"})
			return
		}

		// hard gate: unlike the read path, a write never accepts an
		// invalid document
		issues, err := schema.Validate(name, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid json", Detail: err.Error()})
			return
		}
		if len(issues) > 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "schema validation failed",
				Details: issues,
			})
			return
		}

		file, err := store.Write(name, lang, body)
		if err != nil {
			log.Printf("[admin] write %s.%s.json failed: %v", name, lang, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("[admin] wrote %s (%d bytes)", file, len(raw))
		c.JSON(http.StatusOK, models.OkResponse{Ok: true, File: file})
	}
}
