package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestScientistHandler_List(t *testing.T) {
	api := newTestAPI(t)

	t.Run("empty table gives an empty array", func(t *testing.T) {
		w := api.do(http.MethodGet, "/scientists", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("lists scientists in id order without missions", func(t *testing.T) {
		api.createScientist(t, `{"name":"Vera Rubin","field_of_study":"Astronomy"}`)
		api.createScientist(t, `{"name":"Carl Sagan","field_of_study":"Planetary Science","avatar":"sagan.png"}`)

		w := api.do(http.MethodGet, "/scientists", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Equal(t, int64(2), gjson.Get(body, "#").Int())
		assert.Equal(t, "Vera Rubin", gjson.Get(body, "0.name").String())
		assert.Equal(t, "Carl Sagan", gjson.Get(body, "1.name").String())
		assert.Equal(t, "sagan.png", gjson.Get(body, "1.avatar").String())
		assert.False(t, gjson.Get(body, "0.missions").Exists())
	})
}

func TestScientistHandler_Create(t *testing.T) {
	t.Run("valid creation echoes the fields", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/scientists", `{"name":"Mae Jemison","field_of_study":"Engineering"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		body := w.Body.String()
		assert.Positive(t, gjson.Get(body, "id").Int())
		assert.Equal(t, "Mae Jemison", gjson.Get(body, "name").String())
		assert.Equal(t, "Engineering", gjson.Get(body, "field_of_study").String())
		assert.Equal(t, gjson.Null, gjson.Get(body, "avatar").Type)
		assert.False(t, gjson.Get(body, "missions").Exists())

		got := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d", gjson.Get(body, "id").Int()), "")
		require.Equal(t, http.StatusOK, got.Code)
		assert.Equal(t, "Mae Jemison", gjson.Get(got.Body.String(), "name").String())
		assert.Equal(t, "Engineering", gjson.Get(got.Body.String(), "field_of_study").String())
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing name", `{"field_of_study":"Astronomy"}`},
		{"empty name", `{"name":"","field_of_study":"Astronomy"}`},
		{"missing field of study", `{"name":"Edwin Hubble"}`},
		{"empty field of study", `{"name":"Edwin Hubble","field_of_study":""}`},
		{"malformed json", `{"name":`},
		{"wrong type", `{"name":42,"field_of_study":"Astronomy"}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name+" is rejected and nothing is stored", func(t *testing.T) {
			api := newTestAPI(t)

			w := api.do(http.MethodPost, "/scientists", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "400: Validation Error", errorOf(w))
			assert.JSONEq(t, `[]`, api.do(http.MethodGet, "/scientists", "").Body.String())
		})
	}

	t.Run("duplicate name is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.createScientist(t, `{"name":"Edwin Hubble","field_of_study":"Cosmology"}`)

		w := api.do(http.MethodPost, "/scientists", `{"name":"Edwin Hubble","field_of_study":"Astronomy"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "400: Validation Error", errorOf(w))
		assert.Equal(t, int64(1), gjson.Get(api.do(http.MethodGet, "/scientists", "").Body.String(), "#").Int())
	})
}

func TestScientistHandler_GetByID(t *testing.T) {
	api := newTestAPI(t)

	t.Run("unknown id", func(t *testing.T) {
		w := api.do(http.MethodGet, "/scientists/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404: Scientist not found", errorOf(w))
	})

	t.Run("non-integer id is not found", func(t *testing.T) {
		w := api.do(http.MethodGet, "/scientists/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404: Scientist not found", errorOf(w))
	})

	t.Run("includes flat missions without nested relations", func(t *testing.T) {
		id := api.createScientist(t, `{"name":"Nancy Roman","field_of_study":"Astronomy"}`)
		mars := api.seedPlanet(t, "Mars")
		titan := api.seedPlanet(t, "Titan")
		api.createMission(t, fmt.Sprintf(`{"name":"Ares I","scientist_id":%d,"planet_id":%d}`, id, mars))
		api.createMission(t, fmt.Sprintf(`{"name":"Dragonfly","scientist_id":%d,"planet_id":%d}`, id, titan))
		api.createMission(t, fmt.Sprintf(`{"name":"Ares II","scientist_id":%d,"planet_id":%d}`, id, mars))

		w := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d", id), "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Equal(t, "Nancy Roman", gjson.Get(body, "name").String())
		assert.Equal(t, int64(3), gjson.Get(body, "missions.#").Int())
		assert.Equal(t, []string{"Ares I", "Dragonfly", "Ares II"}, stringsOf(gjson.Get(body, "missions.#.name")))
		assert.Equal(t, int64(titan), gjson.Get(body, "missions.1.planet_id").Int())
		assert.Equal(t, int64(id), gjson.Get(body, "missions.1.scientist_id").Int())
		assert.Empty(t, gjson.Get(body, "missions.#.planet").Array())
		for _, m := range gjson.Get(body, "missions").Array() {
			assert.False(t, m.Get("scientist").Exists())
			assert.False(t, m.Get("planet").Exists())
			assert.Len(t, m.Map(), 4)
		}
	})

	t.Run("scientist without missions has an empty list", func(t *testing.T) {
		id := api.createScientist(t, `{"name":"Jocelyn Bell","field_of_study":"Astrophysics"}`)

		w := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d", id), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, gjson.Get(w.Body.String(), "missions").Raw)
	})
}

func TestScientistHandler_Update(t *testing.T) {
	t.Run("changes only the given field", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging","avatar":"porco.png"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), `{"field_of_study":"xenobiology"}`)
		require.Equal(t, http.StatusAccepted, w.Code)

		body := w.Body.String()
		assert.Equal(t, id, gjson.Get(body, "id").Int())
		assert.Equal(t, "Carolyn Porco", gjson.Get(body, "name").String())
		assert.Equal(t, "xenobiology", gjson.Get(body, "field_of_study").String())
		assert.Equal(t, "porco.png", gjson.Get(body, "avatar").String())
		assert.False(t, gjson.Get(body, "missions").Exists())

		got := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d", id), "").Body.String()
		assert.Equal(t, "xenobiology", gjson.Get(got, "field_of_study").String())
	})

	t.Run("null avatar clears it", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging","avatar":"porco.png"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), `{"avatar":null}`)

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, gjson.Null, gjson.Get(w.Body.String(), "avatar").Type)
	})

	t.Run("keeping the same name is allowed", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), `{"name":"Carolyn Porco"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("empty body changes nothing", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), `{}`)

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "Imaging", gjson.Get(w.Body.String(), "field_of_study").String())
	})

	t.Run("unknown id", func(t *testing.T) {
		api := newTestAPI(t)

		for _, path := range []string{"/scientists/999", "/scientists/abc"} {
			w := api.do(http.MethodPatch, path, `{"name":"Nobody"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code, path)
			assert.Equal(t, "Scientist not found", errorOf(w), path)
		}
	})

	t.Run("unknown id wins over a bad body", func(t *testing.T) {
		api := newTestAPI(t)

		for _, body := range []string{`{"bogus":1}`, `{"name":""}`, `{"name":"x"`, ""} {
			w := api.do(http.MethodPatch, "/scientists/999", body)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "Scientist not found", errorOf(w), body)
		}
	})

	t.Run("empty body on a known id is a validation error", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "400: Validation error", errorOf(w))
	})

	rejected := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":""}`},
		{"null name", `{"name":null}`},
		{"empty field of study", `{"field_of_study":""}`},
		{"key outside the allow-list", `{"id":77}`},
		{"relationship key", `{"missions":[]}`},
		{"wrong type", `{"name":12}`},
		{"malformed json", `{"name":"x"`},
		{"trailing data", `{"name":"x"} {"name":"y"}`},
	}
	for _, tc := range rejected {
		t.Run(tc.name+" is rejected and nothing changes", func(t *testing.T) {
			api := newTestAPI(t)
			id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging"}`)

			w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "400: Validation error", errorOf(w))

			got := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d", id), "").Body.String()
			assert.Equal(t, "Carolyn Porco", gjson.Get(got, "name").String())
			assert.Equal(t, "Imaging", gjson.Get(got, "field_of_study").String())
		})
	}

	t.Run("name taken by another scientist is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.createScientist(t, `{"name":"Kip Thorne","field_of_study":"Gravitation"}`)
		id := api.createScientist(t, `{"name":"Carolyn Porco","field_of_study":"Imaging"}`)

		w := api.do(http.MethodPatch, fmt.Sprintf("/scientists/%d", id), `{"name":"Kip Thorne"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "400: Validation error", errorOf(w))
	})
}

func TestScientistHandler_Delete(t *testing.T) {
	t.Run("second delete is not found", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Subrahmanyan Chandrasekhar","field_of_study":"Astrophysics"}`)
		path := fmt.Sprintf("/scientists/%d", id)

		w := api.do(http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = api.do(http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404: Scientist not found", errorOf(w))

		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, "").Code)
	})

	t.Run("non-integer id is not found", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodDelete, "/scientists/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404: Scientist not found", errorOf(w))
	})

	t.Run("missions outlive their scientist", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createScientist(t, `{"name":"Gene Shoemaker","field_of_study":"Geology"}`)
		moon := api.seedPlanet(t, "Moon")
		api.createMission(t, fmt.Sprintf(`{"name":"Lunar Prospector","scientist_id":%d,"planet_id":%d}`, id, moon))

		w := api.do(http.MethodDelete, fmt.Sprintf("/scientists/%d", id), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		var orphans int64
		require.NoError(t, api.db.DB.Table("missions").Where("scientist_id IS NULL").Count(&orphans).Error)
		assert.Equal(t, int64(1), orphans)

		got := api.do(http.MethodGet, fmt.Sprintf("/planets/%d/scientists", moon), "")
		require.Equal(t, http.StatusOK, got.Code)
		assert.JSONEq(t, `[]`, got.Body.String())
	})
}

func TestScientistHandler_ListPlanets(t *testing.T) {
	api := newTestAPI(t)
	id := api.createScientist(t, `{"name":"Linda Spilker","field_of_study":"Planetary Science"}`)
	saturn := api.seedPlanet(t, "Saturn")
	enceladus := api.seedPlanet(t, "Enceladus")
	api.seedPlanet(t, "Pluto")
	api.createMission(t, fmt.Sprintf(`{"name":"Cassini","scientist_id":%d,"planet_id":%d}`, id, saturn))
	api.createMission(t, fmt.Sprintf(`{"name":"Flyby","scientist_id":%d,"planet_id":%d}`, id, enceladus))
	api.createMission(t, fmt.Sprintf(`{"name":"Grand Finale","scientist_id":%d,"planet_id":%d}`, id, saturn))

	t.Run("distinct planets in id order", func(t *testing.T) {
		w := api.do(http.MethodGet, fmt.Sprintf("/scientists/%d/planets", id), "")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, []string{"Saturn", "Enceladus"}, stringsOf(gjson.Get(w.Body.String(), "#.name")))
	})

	t.Run("unknown scientist", func(t *testing.T) {
		w := api.do(http.MethodGet, "/scientists/999/planets", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "404: Scientist not found", errorOf(w))
	})
}

func stringsOf(result gjson.Result) []string {
	var out []string
	for _, r := range result.Array() {
		out = append(out, r.String())
	}
	return out
}
