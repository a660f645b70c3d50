package graphics

// MeshCache keeps one GPU buffer per scene node id. It is only touched from
// the render thread, so it needs no lock.
type MeshCache struct {
	buffers map[string]*MeshBuffer
}

func NewMeshCache() *MeshCache {
	return &MeshCache{buffers: make(map[string]*MeshBuffer)}
}

// Get returns the buffer for id, calling upload the first time id is seen.
func (c *MeshCache) Get(id string, upload func() *MeshBuffer) *MeshBuffer {
	if b, ok := c.buffers[id]; ok {
		return b
	}
	b := upload()
	c.buffers[id] = b
	return b
}

// Dispose deletes every cached buffer.
func (c *MeshCache) Dispose() {
	for id, b := range c.buffers {
		b.Delete()
		delete(c.buffers, id)
	}
}
