package chart

import (
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// Canvas holds the current drawing of every mount point, keyed by canvas id. Renderers replace a
// drawing as a whole; nothing of a previous drawing survives a new render.
type Canvas struct {
	mutex    sync.RWMutex
	drawings map[string]*Node
	logger   *logrus.Logger
}

func NewCanvas(logger *logrus.Logger) *Canvas {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Canvas{
		drawings: map[string]*Node{},
		logger:   logger,
	}
}

func (c *Canvas) mount(canvasID string, root *Node) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.drawings[canvasID] = root
}

// Clear removes the drawing mounted at canvasID, if any.
func (c *Canvas) Clear(canvasID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.drawings, canvasID)
}

func (c *Canvas) Drawing(canvasID string) (*Node, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	root, ok := c.drawings[canvasID]
	return root, ok
}

// IDs lists the mounted canvases in order.
func (c *Canvas) IDs() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ids := make([]string, 0, len(c.drawings))
	for id := range c.drawings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// WriteSVG serializes the drawing mounted at canvasID. It reports false when nothing is mounted.
func (c *Canvas) WriteSVG(canvasID string, w io.Writer) (bool, error) {
	root, ok := c.Drawing(canvasID)
	if !ok {
		return false, nil
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return true, Encode(w, root)
}

// SVG returns the serialized drawing mounted at canvasID.
func (c *Canvas) SVG(canvasID string) ([]byte, bool, error) {
	var buf bytes.Buffer
	ok, err := c.WriteSVG(canvasID, &buf)
	if err != nil || !ok {
		return nil, ok, err
	}
	return buf.Bytes(), true, nil
}

func Encode(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
