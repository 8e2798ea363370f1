package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxcgm/cgm/command"
	"github.com/gfxcgm/cgm/config"
	"github.com/gfxcgm/cgm/internal/mstate"
	"github.com/gfxcgm/cgm/internal/primitive"
)

func render(t *testing.T, settings config.Settings, cmds []command.Command) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, NewEmitter(settings).Emit(&sb, cmds))
	return sb.String()
}

func vdcInt(v int64) primitive.VDC { return primitive.VDC{Int: v} }

func point(x, y int64) primitive.Point {
	return primitive.Point{X: vdcInt(x), Y: vdcInt(y)}
}

func TestEmitDelimiterBegMF(t *testing.T) {
	out := render(t, config.Default(), []command.Command{
		command.BegMF{Header: command.Header{ClassCode: command.ClassDelimiter, ElementID: command.IDBegMF}, Name: []byte("hello")},
	})
	assert.Equal(t, "BEGMF 'hello';\n", out)
}

func TestEmitMetafileDescriptorIndentAndKeyword(t *testing.T) {
	out := render(t, config.Default(), []command.Command{
		command.MetafileVersion{Header: command.Header{ClassCode: command.ClassMetafileDescriptor, ElementID: command.IDMetafileVersion}, Version: 1},
	})
	assert.Equal(t, " mfversion 1;\n", out)
}

func TestEmitIntegerPrecisionAnnotatesBitWidth(t *testing.T) {
	out := render(t, config.Default(), []command.Command{
		command.IntegerPrecisionCommand{Header: command.Header{ClassCode: command.ClassMetafileDescriptor, ElementID: command.IDIntegerPrecision}, Bits: 16},
	})
	assert.Equal(t, " integerprec -32768, 32767 % 16 binary bits %;\n", out)
}

// TestEmitVDCTypeOverride checks spec §4.3: once VDCTYPE Integer has been
// observed under the default ForceRealVdcOnEmit mode, subsequent VDC
// values print as reals even though they decoded as plain integers.
func TestEmitVDCTypeOverride(t *testing.T) {
	cmds := []command.Command{
		command.VDCTypeCommand{Header: command.Header{ClassCode: command.ClassMetafileDescriptor, ElementID: command.IDVDCType}, Type: mstate.VDCInteger, Overridden: true},
		command.Rectangle{Header: command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDRectangle}, First: point(1, 2), Second: point(3, 4)},
	}
	out := render(t, config.Default(), cmds)
	assert.Contains(t, out, "vdctype real;")
	assert.Contains(t, out, "rect (1.0000,2.0000) (3.0000,4.0000);")
}

// TestEmitVDCTypePreserved checks that disabling the override (config
// PreserveVdcType) keeps plain integer VDC formatting.
func TestEmitVDCTypePreserved(t *testing.T) {
	settings := config.Default()
	settings.VDCMode = config.PreserveVdcType
	cmds := []command.Command{
		command.VDCTypeCommand{Header: command.Header{ClassCode: command.ClassMetafileDescriptor, ElementID: command.IDVDCType}, Type: mstate.VDCInteger, Overridden: true},
		command.Rectangle{Header: command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDRectangle}, First: point(1, 2), Second: point(3, 4)},
	}
	out := render(t, settings, cmds)
	assert.Contains(t, out, "vdctype integer;")
	assert.Contains(t, out, "rect (1,2) (3,4);")
}

func TestEmitArcCentreLiteralForm(t *testing.T) {
	cmd := command.ArcCentre{
		Header:      command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDArcCentre},
		Centre:      point(10, 20),
		StartVector: point(1, 0),
		EndVector:   point(0, 1),
		Radius:      vdcInt(5),
	}
	out := render(t, config.Default(), []command.Command{cmd})
	assert.Equal(t, "  arcctr 10 20 1 0 0 1 5;\n", out)
}

// TestEmitCircleLiteralForm checks spec §4.5 line 147: CIRCLE emits its
// centre as two bare coordinate tokens, not a `(x,y)` point.
func TestEmitCircleLiteralForm(t *testing.T) {
	cmd := command.Circle{
		Header: command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDCircle},
		Centre: point(10, 20),
		Radius: vdcInt(5),
	}
	out := render(t, config.Default(), []command.Command{cmd})
	assert.Equal(t, "  circle 10 20 5;\n", out)
}

// TestEmitEllipseLiteralForm checks spec §4.5 line 148: ELLIPSE emits six
// bare coordinate tokens, not three `(x,y)` points.
func TestEmitEllipseLiteralForm(t *testing.T) {
	cmd := command.Ellipse{
		Header:     command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDEllipse},
		Centre:     point(1, 2),
		FirstConj:  point(3, 4),
		SecondConj: point(5, 6),
	}
	out := render(t, config.Default(), []command.Command{cmd})
	assert.Equal(t, "  ellipse 1 2 3 4 5 6;\n", out)
}

// TestEmitRestrictedTextLiteralForm checks spec §4.5 line 150: RESTRTEXT
// emits its position as two bare coordinate tokens, not a `(x,y)` point.
func TestEmitRestrictedTextLiteralForm(t *testing.T) {
	cmd := command.RestrictedText{
		Header:      command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDRestrictedText},
		DeltaWidth:  vdcInt(7),
		DeltaHeight: vdcInt(8),
		Position:    point(1, 2),
		Final:       command.TextFinal,
		String:      []byte("hi"),
	}
	out := render(t, config.Default(), []command.Command{cmd})
	assert.Equal(t, "  restrtext 7 8 1 2 final, 'hi';\n", out)
}

func TestEmitColourTableScalesDirectComponents(t *testing.T) {
	cmd := command.ColourTable{
		Header:     command.Header{ClassCode: command.ClassAttribute, ElementID: command.IDColourTable},
		StartIndex: 1,
		Colours: []primitive.Colour{
			{Indexed: false, Components: []uint64{255, 0, 255}},
		},
	}
	out := render(t, config.Default(), []command.Command{cmd})
	assert.Equal(t, "  colrtable 1, 255 0 255;\n", out)
}

func TestEmitUnknownAsComment(t *testing.T) {
	out := render(t, config.Default(), []command.Command{
		command.Unknown{Header: command.Header{ClassCode: command.ClassEscape, ElementID: 99}, Bytes: []byte{1, 2}},
	})
	assert.Equal(t, "% Unknown command: Class=6, ID=99 %;\n", out)
}

func TestEmitUnknownSuppressedWhenConfigured(t *testing.T) {
	settings := config.Default()
	settings.EmitUnknownAsComment = false
	out := render(t, settings, []command.Command{
		command.Unknown{Header: command.Header{ClassCode: command.ClassEscape, ElementID: 99}, Bytes: []byte{1, 2}},
	})
	assert.Equal(t, "", out)
}

func TestEmitWrapsLongStatements(t *testing.T) {
	settings := config.Default()
	settings.WrapColumn = 20
	pts := []primitive.Point{point(1, 1), point(2, 2), point(3, 3), point(4, 4)}
	out := render(t, settings, []command.Command{
		command.Polyline{Header: command.Header{ClassCode: command.ClassGraphicalPrimitive, ElementID: command.IDPolyline}, Points: pts},
	})
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}
