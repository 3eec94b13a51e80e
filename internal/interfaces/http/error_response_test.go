package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-retail-api/internal/application/dto"
)

// El 500 nunca refleja el error crudo: un fallo de infraestructura con DSN
// y credenciales dentro debe salir al cliente como un mensaje fijo.
func TestInternalError_NoFiltraDetallesDeInfraestructura(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return internalError(c, errors.New("insert order: failed to connect to host=db.internal user=pos password=hunter2: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno", out.Message)

	assert.NotContains(t, string(body), "hunter2")
	assert.NotContains(t, string(body), "db.internal")
	assert.NotContains(t, string(body), "connection refused")
}
