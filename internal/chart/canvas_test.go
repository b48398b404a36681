package chart

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

func TestCanvas_SVG(t *testing.T) {
	canvas, _ := testCanvas()
	BarPlot(canvas, barProps(model.ChartRecord{ID: "A", Count: 38}, model.ChartRecord{ID: "B", Count: 73}))

	out, ok, err := canvas.SVG("incomes_plot")
	require.NoError(t, err)
	require.True(t, ok)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, xml.Header))
	assert.Contains(t, svg, `<svg xmlns="http://www.w3.org/2000/svg" id="incomes_plot" width="300" height="300"`)
	assert.Contains(t, svg, `class="bar"`)
	assert.Contains(t, svg, "B\n73 unidades")

	var doc struct {
		XMLName xml.Name
	}
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Equal(t, "svg", doc.XMLName.Local)
}

func TestCanvas_WriteSVGMissing(t *testing.T) {
	canvas, _ := testCanvas()
	var buf bytes.Buffer

	ok, err := canvas.WriteSVG("nowhere", &buf)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, buf.Len())
}

func TestCanvas_IDsAndClear(t *testing.T) {
	canvas, _ := testCanvas()
	CircularBarPlot(canvas, circularProps(model.ChartRecord{ID: "rent", Count: 73}))
	BarPlot(canvas, barProps(model.ChartRecord{ID: "A", Count: 38}))

	assert.Equal(t, []string{"incomes_plot", "outcomes_plot"}, canvas.IDs())

	canvas.Clear("incomes_plot")
	canvas.Clear("never_mounted")
	assert.Equal(t, []string{"outcomes_plot"}, canvas.IDs())
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "18.182", num(200.0/11))
	assert.Equal(t, "-45", num(-45))
	assert.Equal(t, "1.5", num(1.5))
}
