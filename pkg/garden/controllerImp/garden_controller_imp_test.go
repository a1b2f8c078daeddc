package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/entities"
)

type fakeRepo struct {
	garden    *entities.Garden
	created   *entities.Garden
	zone      *entities.Zone
	planting  *entities.Planting
	plantings []entities.Planting
	zones     []entities.Zone
}

func (r *fakeRepo) Create(g *entities.Garden) error { r.created = g; return nil }
func (r *fakeRepo) FindByID(id uint, uid string) (*entities.Garden, error) {
	if r.garden != nil && r.garden.GardenID == id && r.garden.UserID == uid {
		return r.garden, nil
	}
	return nil, echo.ErrNotFound
}
func (r *fakeRepo) ListByUser(uid string) ([]entities.Garden, error) { return nil, nil }
func (r *fakeRepo) CreateZone(z *entities.Zone) error                { r.zone = z; return nil }
func (r *fakeRepo) ZonesByGarden(uint) ([]entities.Zone, error)      { return r.zones, nil }
func (r *fakeRepo) CreatePlanting(p *entities.Planting) error        { r.planting = p; return nil }
func (r *fakeRepo) PlantingsByGarden(uint) ([]entities.Planting, error) {
	return r.plantings, nil
}

func post(t *testing.T, h echo.HandlerFunc, body, paramID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateZoneStoresSoilType(t *testing.T) {
	repo := &fakeRepo{garden: &entities.Garden{GardenID: 1, UserID: "u1", SoilType: "sandy"}}
	h := New(repo)

	rec := post(t, h.CreateZone, `{"name":"Clay Corner","soil_type":"clay"}`, "1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.zone)
	assert.Equal(t, "clay", repo.zone.SoilType)
	assert.Equal(t, "Clay Corner", repo.zone.Name)
}

func TestCreateZoneRejectsUnknownSoilType(t *testing.T) {
	repo := &fakeRepo{garden: &entities.Garden{GardenID: 1, UserID: "u1"}}
	h := New(repo)

	rec := post(t, h.CreateZone, `{"name":"Bad","soil_type":"chalk"}`, "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, repo.zone)
}

func TestCreateZoneSoilTypeOptional(t *testing.T) {
	repo := &fakeRepo{garden: &entities.Garden{GardenID: 1, UserID: "u1", SoilType: "loam"}}
	h := New(repo)

	rec := post(t, h.CreateZone, `{"name":"Herb Row"}`, "1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.zone)
	assert.Equal(t, "", repo.zone.SoilType) // empty means inherit the garden's
}

func TestCreateGardenRejectsUnknownSoilType(t *testing.T) {
	repo := &fakeRepo{}
	h := New(repo)

	rec := post(t, h.Create, `{"name":"Front Bed","soil_type":"gravel"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, repo.created)

	rec = post(t, h.Create, `{"name":"Front Bed","soil_type":"loam"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "loam", repo.created.SoilType)
}
