package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/domain/entity"
	apphttp "github.com/jhoicas/office-api/internal/interfaces/http"
	"github.com/jhoicas/office-api/pkg/logger"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func TestRequestLogger_IncluyePrincipalYNivelPorStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", App: "office-test", Output: &buf})
	app := apphttp.NewApp("test", log.Component("http"))
	app.Get("/protected",
		apphttp.AuthMiddleware(testPublicKey, testIssuer),
		apphttp.RequireRole(entity.RoleManager),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp := doRequest(t, app, tokenForRole(t, "MANAGER"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)

	ok := lines[0]
	assert.Equal(t, "info", ok["level"])
	assert.Equal(t, "office-test", ok[logger.FieldApp])
	assert.Equal(t, "http", ok[logger.FieldComponent])
	assert.Equal(t, testPrincipalID, ok[logger.FieldPrincipalID])
	assert.Equal(t, "MANAGER", ok[logger.FieldRole])
	assert.Equal(t, "/protected", ok["path"])
	assert.EqualValues(t, 200, ok["status"])

	anon := lines[1]
	assert.Equal(t, "warn", anon["level"])
	assert.NotContains(t, anon, logger.FieldPrincipalID)
	assert.EqualValues(t, 401, anon["status"])
}
