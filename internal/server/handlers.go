package server

import (
	"bytes"
	"image/color"
	"image/png"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mapgen/internal/biome"
	"mapgen/internal/mapgen"
	"mapgen/internal/render"
	"mapgen/internal/terrain"
)

// Handler contains all HTTP handlers.
type Handler struct {
	store *mapgen.Store
}

// NewHandler creates a new handler.
func NewHandler(store *mapgen.Store) *Handler {
	return &Handler{store: store}
}

// HealthCheck returns service health status.
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "mapgen",
		"ready":   h.store.Current() != nil,
	})
}

// GetOptions lists the strategy names accepted by Regenerate.
func (h *Handler) GetOptions(c *fiber.Ctx) error {
	opts := OptionsDTO{}
	for _, df := range terrain.DistanceFns() {
		opts.Distance = append(opts.Distance, df.String())
	}
	for _, rf := range terrain.ReshapingFns() {
		opts.Reshape = append(opts.Reshape, rf.String())
	}
	for _, p := range biome.Policies() {
		opts.Classifiers = append(opts.Classifiers, p.String())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    opts,
	})
}

// GetMap returns the current map snapshot.
func (h *Handler) GetMap(c *fiber.Ctx) error {
	m, err := h.current()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    toMapDTO(m),
	})
}

// GetMapSVG renders the current map as SVG. Query flags sites, wire and
// boundary toggle the overlays; size sets the square image size.
func (h *Handler) GetMapSVG(c *fiber.Ctx) error {
	m, err := h.current()
	if err != nil {
		return err
	}
	opts := render.DefaultSVGOptions()
	if size := c.QueryInt("size", 0); size > 0 && size <= 4096 {
		opts.Width, opts.Height = size, size
	}
	opts.Sites = c.QueryBool("sites", opts.Sites)
	opts.Wire = c.QueryBool("wire", opts.Wire)
	opts.Boundary = c.QueryBool("boundary", opts.Boundary)

	var buf bytes.Buffer
	render.WriteSVG(&buf, m, opts)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

// GetMapPNG rasterizes the current map.
func (h *Handler) GetMapPNG(c *fiber.Ctx) error {
	m, err := h.current()
	if err != nil {
		return err
	}
	size := c.QueryInt("size", 512)
	if size <= 0 || size > 4096 {
		return fiber.NewError(fiber.StatusBadRequest, "size must be between 1 and 4096")
	}
	img := render.Rasterize(m, size, size, color.NRGBA{R: 12, G: 14, B: 20, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode image")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// Regenerate builds a new map from the query parameters seed, distance,
// reshape and classifier. Omitted values keep the current ones.
func (h *Handler) Regenerate(c *fiber.Ctx) error {
	cur, err := h.current()
	if err != nil {
		return err
	}
	seed := cur.Seed()
	if v := c.Query("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid seed")
		}
		seed = parsed
	}
	df := cur.Distance()
	if v := c.Query("distance"); v != "" {
		if df, err = terrain.ParseDistanceFn(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	rf := cur.Reshape()
	if v := c.Query("reshape"); v != "" {
		if rf, err = terrain.ParseReshapingFn(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	policy := cur.Classifier()
	if v := c.Query("classifier"); v != "" {
		if policy, err = biome.ParsePolicy(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	next, err := h.store.Update(func(cur *mapgen.Map) (*mapgen.Map, error) {
		m, err := cur.Regenerate(seed, df, rf)
		if err != nil {
			return nil, err
		}
		if m.Classifier() != policy {
			m = m.Reclassify(policy)
		}
		return m, nil
	})
	if err != nil {
		log.Printf("regenerate seed=%d distance=%v reshape=%v: %v", seed, df, rf, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate map")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    toMapDTO(next),
	})
}

func (h *Handler) current() (*mapgen.Map, error) {
	m := h.store.Current()
	if m == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "No map generated yet")
	}
	return m, nil
}
