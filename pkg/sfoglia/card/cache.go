package card

import "github.com/veandco/go-sdl2/sdl"

const defaultTextureBudget = 8

// textureCache keeps recently rendered header textures alive so labels
// are not re-rasterized every frame. Least recently used entries are
// destroyed when the budget is exceeded.
type textureCache struct {
	entries map[string]*sdl.Texture
	order   []string
	budget  int
}

func newTextureCache(budget int) *textureCache {
	return &textureCache{
		entries: make(map[string]*sdl.Texture),
		order:   make([]string, 0, budget),
		budget:  budget,
	}
}

func (c *textureCache) get(key string) *sdl.Texture {
	texture, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.touch(key)
	return texture
}

func (c *textureCache) put(key string, texture *sdl.Texture) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.budget {
		oldest := c.order[0]
		c.order = c.order[1:]
		if t, ok := c.entries[oldest]; ok {
			t.Destroy()
			delete(c.entries, oldest)
		}
	}

	c.entries[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) purge() {
	for _, texture := range c.entries {
		texture.Destroy()
	}
	c.entries = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
