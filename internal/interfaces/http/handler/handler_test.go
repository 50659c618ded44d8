package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	explorationapp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/cosmic/backend/internal/domain/exploration"
	"github.com/cosmic/backend/internal/infrastructure/config"
	"github.com/cosmic/backend/internal/infrastructure/logger"
	"github.com/cosmic/backend/internal/infrastructure/persistence"
	"github.com/cosmic/backend/internal/interfaces/http/middleware"
	"github.com/cosmic/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testAPI is the full HTTP stack on top of a migrated in-memory database
type testAPI struct {
	engine *gin.Engine
	db     *persistence.Database
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(context.Background()))

	log := zaptest.NewLogger(t)
	scope := persistence.NewGormTransactionScope(db.DB)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	system := NewSystemHandler(db)
	engine.GET("/", system.Home)
	engine.GET("/health", system.Health)

	router.NewRouter(engine).
		Register(ScientistRoutes(NewScientistHandler(explorationapp.NewScientistService(scope, log)))).
		Register(PlanetRoutes(NewPlanetHandler(explorationapp.NewPlanetService(scope)))).
		Register(MissionRoutes(NewMissionHandler(explorationapp.NewMissionService(scope, log)))).
		Setup()

	return &testAPI{engine: engine, db: db}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// createScientist creates a scientist through the API and returns its id
func (a *testAPI) createScientist(t *testing.T, body string) int64 {
	t.Helper()

	w := a.do(http.MethodPost, "/scientists", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return gjson.Get(w.Body.String(), "id").Int()
}

// seedPlanet inserts a planet directly, there is no endpoint that creates planets
func (a *testAPI) seedPlanet(t *testing.T, name string) uint {
	t.Helper()

	planet := exploration.NewPlanet(name, "4.2 ly", "Proxima Centauri", "")
	require.NoError(t, a.db.DB.Create(planet).Error)
	return planet.ID
}

// createMission creates a mission through the API
func (a *testAPI) createMission(t *testing.T, body string) {
	t.Helper()

	w := a.do(http.MethodPost, "/missions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func errorOf(w *httptest.ResponseRecorder) string {
	return gjson.Get(w.Body.String(), "error").String()
}
