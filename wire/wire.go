// Package wire implements the binary transport: a little-endian framed
// stream consisting of a fixed file header followed by a sequence of
// versioned, length-prefixed Action payloads.
//
// No serialization library (bincode, protobuf, msgpack, gob, or
// otherwise) appears anywhere in the example pack, so the codec here is
// a direct, hand-rolled translation of original_source/fluster_core/src/
// serialization.rs's nom-based parser into Go's encoding/binary idiom:
// the same header shape, the same per-action version+length framing, and
// the same geometrically-growing read buffer (capped at ~4 MiB) in place
// of the original's circular::Buffer.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/action"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/shape"
)

const (
	magic = "FSR"

	// FileVersion is the maximum file-header version this codec accepts.
	FileVersion uint8 = 1
	// ActionVersion is the payload version written for every action.
	ActionVersion uint8 = 1

	startingBufferSize = 1000
	maxBufferSize      = 4_096_000
)

// ErrMalformedStream wraps any header or payload parse failure.
var ErrMalformedStream = errors.New("wire: malformed stream")

// UnsupportedVersionError reports a file header version beyond what this
// codec supports.
type UnsupportedVersionError struct {
	Found, Max uint8
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("wire: unsupported version %d, max %d", e.Found, e.Max)
}

// Header is the fixed-size prefix of a stream: magic "FSR", the file
// format version, target frames-per-second, and the reported stage size.
type Header struct {
	Version   uint8
	FPS       uint8
	StageSize stagewright.Vector2I
}

// WriteStream serializes header fields followed by every action in
// actions, each framed as action_version:u8 | payload_len:u32 | payload.
func WriteStream(w io.Writer, actions []action.Action, stageSize stagewright.Vector2I, fps uint8) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := writeU8s(w, FileVersion, fps); err != nil {
		return err
	}
	if err := writeI32(w, int32(stageSize.X)); err != nil {
		return err
	}
	if err := writeI32(w, int32(stageSize.Y)); err != nil {
		return err
	}
	for _, a := range actions {
		payload, err := EncodeAction(a)
		if err != nil {
			return err
		}
		if err := writeU8s(w, ActionVersion); err != nil {
			return err
		}
		if err := writeU32(w, uint32(len(payload))); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}

func writeU8s(w io.Writer, bs ...uint8) error {
	_, err := w.Write(bs)
	return err
}

func writeU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeI32(w io.Writer, v int32) error {
	return writeU32(w, uint32(v))
}

// Reader is a streaming decoder over a frame-per-action binary stream: it
// grows an internal buffer geometrically (capped at ~4 MiB) as more bytes
// are needed, mirroring the original's circular::Buffer grow-on-demand
// policy.
type Reader struct {
	src io.Reader
	buf []byte // unconsumed bytes
}

// ReadHeader parses the fixed header from src and returns a Reader
// positioned to stream the remaining actions via Next.
func ReadHeader(src io.Reader) (Header, *Reader, error) {
	r := &Reader{src: src, buf: make([]byte, 0, startingBufferSize)}
	for len(r.buf) < 13 { // "FSR" + version + fps + 4 + 4
		if err := r.fill(); err != nil {
			return Header{}, nil, fmt.Errorf("%w: reading header: %v", ErrMalformedStream, err)
		}
	}
	if string(r.buf[:3]) != magic {
		return Header{}, nil, fmt.Errorf("%w: bad magic", ErrMalformedStream)
	}
	version := r.buf[3]
	fps := r.buf[4]
	stageW := int32(binary.LittleEndian.Uint32(r.buf[5:9]))
	stageH := int32(binary.LittleEndian.Uint32(r.buf[9:13]))
	r.buf = r.buf[13:]

	if version > FileVersion {
		return Header{}, nil, UnsupportedVersionError{Found: version, Max: FileVersion}
	}

	h := Header{Version: version, FPS: fps, StageSize: stagewright.Vector2I{X: int(stageW), Y: int(stageH)}}
	return h, r, nil
}

// fill reads more bytes from src into buf, growing buf's capacity
// geometrically (doubling) up to maxBufferSize. Returns io.EOF when src
// is exhausted and no more bytes are available.
func (r *Reader) fill() error {
	if cap(r.buf)-len(r.buf) < 512 {
		newCap := cap(r.buf) * 2
		if newCap == 0 {
			newCap = startingBufferSize
		}
		if newCap > maxBufferSize {
			newCap = maxBufferSize
		}
		if newCap <= cap(r.buf) {
			return fmt.Errorf("wire: buffer at max size %d bytes", maxBufferSize)
		}
		grown := make([]byte, len(r.buf), newCap)
		copy(grown, r.buf)
		r.buf = grown
	}
	n := len(r.buf)
	r.buf = r.buf[:cap(r.buf)]
	read, err := r.src.Read(r.buf[n:])
	r.buf = r.buf[:n+read]
	if read == 0 && err != nil {
		return err
	}
	return nil
}

// Next decodes and returns the next action in the stream. ok is false,
// err nil, at clean end of stream.
func (r *Reader) Next() (a action.Action, ok bool, err error) {
	for len(r.buf) < 5 {
		if ferr := r.fill(); ferr != nil {
			if errors.Is(ferr, io.EOF) && len(r.buf) == 0 {
				return action.Action{}, false, nil
			}
			return action.Action{}, false, fmt.Errorf("%w: %v", ErrMalformedStream, ferr)
		}
	}
	_ = r.buf[0] // action_version, unused for now: every version decodes the same way
	size := binary.LittleEndian.Uint32(r.buf[1:5])
	for uint32(len(r.buf)-5) < size {
		if ferr := r.fill(); ferr != nil {
			return action.Action{}, false, fmt.Errorf("%w: truncated payload: %v", ErrMalformedStream, ferr)
		}
	}
	payload := r.buf[5 : 5+int(size)]
	a, err = DecodeAction(payload)
	if err != nil {
		return action.Action{}, false, err
	}
	r.buf = r.buf[5+int(size):]
	return a, true, nil
}

// EncodeAction serializes a single Action to its self-describing payload
// form (the bytes following the action_version|payload_len frame).
func EncodeAction(a action.Action) ([]byte, error) {
	var buf bytes.Buffer
	w := &encoder{w: &buf}
	w.u8(uint8(a.Kind))
	switch a.Kind {
	case action.KindCreateRoot:
		w.containerID(a.ContainerID)
	case action.KindAddQuadTreeLayer:
		w.u32(uint32(a.Layer))
		w.rect(a.LayerExtent)
		w.f64(a.LayerOptions.Buffer)
	case action.KindSetBackground:
		w.color(a.Background)
	case action.KindEndInitialization:
		// no payload
	case action.KindLabel:
		w.str(a.Label)
	case action.KindDefineShape:
		w.libraryID(a.LibraryID)
		w.shape(a.Shape)
	case action.KindLoadBitmap:
		w.libraryID(a.LibraryID)
		w.bitmap(a.Bitmap)
	case action.KindCreateContainer:
		w.containerID(a.ContainerID)
		w.containerID(a.Parent)
		w.u32(uint32(len(a.Properties)))
		for _, p := range a.Properties {
			w.creationProperty(p)
		}
	case action.KindUpdateContainer:
		w.containerID(a.ContainerID)
		w.u32(uint32(len(a.Updates)))
		for _, p := range a.Updates {
			w.updateProperty(p)
		}
	case action.KindRemoveContainer:
		w.containerID(a.ContainerID)
		w.boolean(a.Cascade)
	case action.KindPresentFrame:
		w.u32(a.FrameStart)
		w.u32(a.FrameCount)
	default:
		return nil, fmt.Errorf("wire: unknown action kind %d", a.Kind)
	}
	if w.err != nil {
		return nil, w.err
	}
	return buf.Bytes(), nil
}

// DecodeAction parses a single Action from its payload bytes.
func DecodeAction(data []byte) (action.Action, error) {
	r := &decoder{data: data}
	kind := action.Kind(r.u8())
	a := action.Action{Kind: kind}
	switch kind {
	case action.KindCreateRoot:
		a.ContainerID = r.id()
	case action.KindAddQuadTreeLayer:
		a.Layer = stagewright.QuadTreeLayer(r.u32())
		a.LayerExtent = r.rect()
		a.LayerOptions = action.LayerOptions{Buffer: r.f64()}
	case action.KindSetBackground:
		a.Background = r.color()
	case action.KindEndInitialization:
		// no payload
	case action.KindLabel:
		a.Label = r.str()
	case action.KindDefineShape:
		a.LibraryID = r.id2()
		a.Shape = r.shape()
	case action.KindLoadBitmap:
		a.LibraryID = r.id2()
		a.Bitmap = r.bitmap()
	case action.KindCreateContainer:
		a.ContainerID = r.id()
		a.Parent = r.id()
		n := r.u32()
		a.Properties = make([]action.CreationProperty, n)
		for i := range a.Properties {
			a.Properties[i] = r.creationProperty()
		}
	case action.KindUpdateContainer:
		a.ContainerID = r.id()
		n := r.u32()
		a.Updates = make([]action.UpdateProperty, n)
		for i := range a.Updates {
			a.Updates[i] = r.updateProperty()
		}
	case action.KindRemoveContainer:
		a.ContainerID = r.id()
		a.Cascade = r.boolean()
	case action.KindPresentFrame:
		a.FrameStart = r.u32()
		a.FrameCount = r.u32()
	default:
		return action.Action{}, fmt.Errorf("%w: unknown action kind %d", ErrMalformedStream, kind)
	}
	if r.err != nil {
		return action.Action{}, fmt.Errorf("%w: %v", ErrMalformedStream, r.err)
	}
	return a, nil
}

// --- low-level encoder ---

type encoder struct {
	w   *bytes.Buffer
	err error
}

func (e *encoder) u8(v uint8) {
	if e.err != nil {
		return
	}
	e.err = e.w.WriteByte(v)
}

func (e *encoder) boolean(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) u32(v uint32) {
	if e.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *encoder) f64(v float64) {
	bits := math.Float64bits(v)
	e.u32(uint32(bits))
	e.u32(uint32(bits >> 32))
}

func (e *encoder) str(s string) {
	e.u32(uint32(len(s)))
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

func (e *encoder) bytesRaw(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) containerID(id stagewright.ContainerId) {
	e.bytesRaw(id[:])
}

func (e *encoder) libraryID(id stagewright.LibraryId) {
	e.bytesRaw(id[:])
}

func (e *encoder) vec2(v stagewright.Vec2) {
	e.f64(v.X)
	e.f64(v.Y)
}

func (e *encoder) rect(r stagewright.Rect) {
	e.f64(r.X)
	e.f64(r.Y)
	e.f64(r.Width)
	e.f64(r.Height)
}

func (e *encoder) color(c stagewright.Color) {
	e.f64(c.R)
	e.f64(c.G)
	e.f64(c.B)
	e.f64(c.A)
}

func (e *encoder) srt(s stagewright.ScaleRotationTranslation) {
	e.f64(s.ScaleX)
	e.f64(s.ScaleY)
	e.f64(s.Rotation)
	e.f64(s.TranslateX)
	e.f64(s.TranslateY)
}

func (e *encoder) coloring(c stagewright.Coloring) {
	e.u8(uint8(c.Kind))
	switch c.Kind {
	case stagewright.ColoringKindColor:
		e.color(c.Color)
	case stagewright.ColoringKindColorings:
		e.u32(uint32(len(c.Children)))
		for _, ch := range c.Children {
			e.coloring(ch)
		}
	}
}

func (e *encoder) edge(ed shape.Edge) {
	e.u8(uint8(ed.Kind))
	switch ed.Kind {
	case shape.EdgeMove, shape.EdgeLine:
		e.vec2(ed.To)
	case shape.EdgeQuadratic:
		e.vec2(ed.Control)
		e.vec2(ed.To)
	case shape.EdgeBezier:
		e.vec2(ed.Control1)
		e.vec2(ed.Control2)
		e.vec2(ed.To)
	case shape.EdgeArcTo:
		e.vec2(ed.Control)
		e.vec2(ed.To)
		e.f64(ed.Radius)
	case shape.EdgeArc:
		e.vec2(ed.Center)
		e.vec2(ed.Axes)
		e.f64(ed.StartAngle)
		e.f64(ed.EndAngle)
	case shape.EdgeClose:
		// no payload
	}
}

func (e *encoder) strokeStyle(s shape.StrokeStyle) {
	e.f64(s.LineWidth)
	e.u8(uint8(s.LineCap))
	e.u8(uint8(s.LineJoin))
}

func (e *encoder) shape(s shape.Shape) {
	e.u8(uint8(s.Kind))
	switch s.Kind {
	case shape.KindPath:
		e.u32(uint32(len(s.Edges)))
		for _, ed := range s.Edges {
			e.edge(ed)
		}
		e.color(s.Color)
		e.strokeStyle(s.Stroke)
	case shape.KindFill:
		e.u32(uint32(len(s.Edges)))
		for _, ed := range s.Edges {
			e.edge(ed)
		}
		e.color(s.Color)
	case shape.KindMorphPath:
		e.u32(uint32(len(s.MorphEdges)))
		for _, me := range s.MorphEdges {
			e.edge(me.Start)
			e.edge(me.End)
		}
		e.color(s.Color)
		e.strokeStyle(s.Stroke)
	case shape.KindMorphFill:
		e.u32(uint32(len(s.MorphEdges)))
		for _, me := range s.MorphEdges {
			e.edge(me.Start)
			e.edge(me.End)
		}
		e.color(s.Color)
	case shape.KindClip:
		e.u32(uint32(len(s.Edges)))
		for _, ed := range s.Edges {
			e.edge(ed)
		}
	case shape.KindGroup:
		e.u32(uint32(len(s.Children)))
		for _, ch := range s.Children {
			e.affine(ch.Transform)
			e.shape(ch.Shape)
		}
	}
}

func (e *encoder) affine(a stagewright.Affine) {
	for _, v := range a {
		e.f64(v)
	}
}

func (e *encoder) bitmap(b library.Bitmap) {
	e.u32(uint32(b.SizeX))
	e.u32(uint32(b.SizeY))
	e.u32(uint32(len(b.Colors)))
	for _, c := range b.Colors {
		e.color(c)
	}
}

func (e *encoder) boundsDefinition(b action.BoundsDefinition) {
	e.boolean(b.FromDisplay)
	e.rect(b.Defined)
}

func (e *encoder) creationProperty(p action.CreationProperty) {
	e.u8(uint8(p.Kind))
	switch p.Kind {
	case action.PropTransform:
		e.srt(p.Transform)
	case action.PropMorphIndex:
		e.f64(p.MorphIndex)
	case action.PropColoring:
		e.coloring(p.Coloring)
	case action.PropViewRect:
		e.rect(p.ViewRect)
	case action.PropDisplay:
		e.libraryID(p.Display)
		e.u8(uint8(p.DisplayKnd))
	case action.PropLayer:
		e.u32(uint32(p.Layer))
	case action.PropOrder:
		e.u8(uint8(p.Order))
	case action.PropBounds:
		e.boundsDefinition(p.Bounds)
	}
}

func (e *encoder) updateProperty(p action.UpdateProperty) {
	e.u8(uint8(p.Kind))
	switch p.Kind {
	case action.PropTransform:
		e.srt(p.Transform)
		e.u8(uint8(p.Easing))
		e.u32(uint32(p.StepN))
		e.u32(p.Frames)
	case action.PropMorphIndex:
		e.f64(p.MorphIndex)
		e.u8(uint8(p.Easing))
		e.u32(uint32(p.StepN))
		e.u32(p.Frames)
	case action.PropColoring:
		e.coloring(p.Coloring)
		e.u8(uint8(p.ColorSpace))
		e.u8(uint8(p.Easing))
		e.u32(uint32(p.StepN))
		e.u32(p.Frames)
	case action.PropViewRect:
		e.rect(p.ViewRect)
		e.u8(uint8(p.Easing))
		e.u32(uint32(p.StepN))
		e.u32(p.Frames)
	case action.PropOrder:
		e.u8(uint8(p.Order))
		e.u8(uint8(p.Easing))
		e.u32(uint32(p.StepN))
		e.u32(p.Frames)
	case action.PropDisplay:
		e.libraryID(p.Display)
		e.u8(uint8(p.DisplayKnd))
	case action.PropRemoveDisplay:
		// no payload
	case action.PropParent:
		e.containerID(p.Parent)
	case action.PropAddToLayer, action.PropRemoveFromLayer:
		e.u32(uint32(p.Layer))
	case action.PropBounds:
		e.boundsDefinition(p.Bounds)
	case action.PropRemoveBounds:
		// no payload
	}
}

// --- low-level decoder ---

type decoder struct {
	data []byte
	pos  int
	err  error
}

func (d *decoder) need(n int) bool {
	if d.err != nil {
		return false
	}
	if d.pos+n > len(d.data) {
		d.err = fmt.Errorf("unexpected end of payload")
		return false
	}
	return true
}

func (d *decoder) u8() uint8 {
	if !d.need(1) {
		return 0
	}
	v := d.data[d.pos]
	d.pos++
	return v
}

func (d *decoder) boolean() bool { return d.u8() != 0 }

func (d *decoder) u32() uint32 {
	if !d.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos : d.pos+4])
	d.pos += 4
	return v
}

func (d *decoder) f64() float64 {
	lo := uint64(d.u32())
	hi := uint64(d.u32())
	return math.Float64frombits(lo | hi<<32)
}

func (d *decoder) str() string {
	n := d.u32()
	if !d.need(int(n)) {
		return ""
	}
	s := string(d.data[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s
}

func (d *decoder) bytesRaw(n int) []byte {
	if !d.need(n) {
		return nil
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b
}

func (d *decoder) id() stagewright.ContainerId {
	b := d.bytesRaw(16)
	var id stagewright.ContainerId
	copy(id[:], b)
	return id
}

func (d *decoder) id2() stagewright.LibraryId {
	b := d.bytesRaw(16)
	var id stagewright.LibraryId
	copy(id[:], b)
	return id
}

func (d *decoder) vec2() stagewright.Vec2 {
	return stagewright.Vec2{X: d.f64(), Y: d.f64()}
}

func (d *decoder) rect() stagewright.Rect {
	return stagewright.Rect{X: d.f64(), Y: d.f64(), Width: d.f64(), Height: d.f64()}
}

func (d *decoder) color() stagewright.Color {
	return stagewright.Color{R: d.f64(), G: d.f64(), B: d.f64(), A: d.f64()}
}

func (d *decoder) srt() stagewright.ScaleRotationTranslation {
	return stagewright.ScaleRotationTranslation{
		ScaleX: d.f64(), ScaleY: d.f64(), Rotation: d.f64(),
		TranslateX: d.f64(), TranslateY: d.f64(),
	}
}

func (d *decoder) coloring() stagewright.Coloring {
	kind := stagewright.ColoringKind(d.u8())
	switch kind {
	case stagewright.ColoringKindColor:
		return stagewright.Coloring{Kind: kind, Color: d.color()}
	case stagewright.ColoringKindColorings:
		n := d.u32()
		children := make([]stagewright.Coloring, n)
		for i := range children {
			children[i] = d.coloring()
		}
		return stagewright.Coloring{Kind: kind, Children: children}
	default:
		return stagewright.Coloring{Kind: stagewright.ColoringKindNone}
	}
}

func (d *decoder) edge() shape.Edge {
	kind := shape.EdgeKind(d.u8())
	e := shape.Edge{Kind: kind}
	switch kind {
	case shape.EdgeMove, shape.EdgeLine:
		e.To = d.vec2()
	case shape.EdgeQuadratic:
		e.Control = d.vec2()
		e.To = d.vec2()
	case shape.EdgeBezier:
		e.Control1 = d.vec2()
		e.Control2 = d.vec2()
		e.To = d.vec2()
	case shape.EdgeArcTo:
		e.Control = d.vec2()
		e.To = d.vec2()
		e.Radius = d.f64()
	case shape.EdgeArc:
		e.Center = d.vec2()
		e.Axes = d.vec2()
		e.StartAngle = d.f64()
		e.EndAngle = d.f64()
	case shape.EdgeClose:
		// no payload
	}
	return e
}

func (d *decoder) strokeStyle() shape.StrokeStyle {
	return shape.StrokeStyle{
		LineWidth: d.f64(),
		LineCap:   shape.LineCap(d.u8()),
		LineJoin:  shape.LineJoin(d.u8()),
	}
}

func (d *decoder) shape() shape.Shape {
	kind := shape.Kind(d.u8())
	s := shape.Shape{Kind: kind}
	switch kind {
	case shape.KindPath:
		n := d.u32()
		s.Edges = make([]shape.Edge, n)
		for i := range s.Edges {
			s.Edges[i] = d.edge()
		}
		s.Color = d.color()
		s.Stroke = d.strokeStyle()
	case shape.KindFill:
		n := d.u32()
		s.Edges = make([]shape.Edge, n)
		for i := range s.Edges {
			s.Edges[i] = d.edge()
		}
		s.Color = d.color()
	case shape.KindMorphPath:
		n := d.u32()
		s.MorphEdges = make([]shape.MorphEdge, n)
		for i := range s.MorphEdges {
			s.MorphEdges[i] = shape.MorphEdge{Start: d.edge(), End: d.edge()}
		}
		s.Color = d.color()
		s.Stroke = d.strokeStyle()
	case shape.KindMorphFill:
		n := d.u32()
		s.MorphEdges = make([]shape.MorphEdge, n)
		for i := range s.MorphEdges {
			s.MorphEdges[i] = shape.MorphEdge{Start: d.edge(), End: d.edge()}
		}
		s.Color = d.color()
	case shape.KindClip:
		n := d.u32()
		s.Edges = make([]shape.Edge, n)
		for i := range s.Edges {
			s.Edges[i] = d.edge()
		}
	case shape.KindGroup:
		n := d.u32()
		s.Children = make([]shape.AugmentedShape, n)
		for i := range s.Children {
			s.Children[i] = shape.AugmentedShape{Transform: d.affine(), Shape: d.shape()}
		}
	}
	return s
}

func (d *decoder) affine() stagewright.Affine {
	var a stagewright.Affine
	for i := range a {
		a[i] = d.f64()
	}
	return a
}

func (d *decoder) bitmap() library.Bitmap {
	sx := int(d.u32())
	sy := int(d.u32())
	n := d.u32()
	colors := make([]stagewright.Color, n)
	for i := range colors {
		colors[i] = d.color()
	}
	return library.Bitmap{SizeX: sx, SizeY: sy, Colors: colors}
}

func (d *decoder) boundsDefinition() action.BoundsDefinition {
	return action.BoundsDefinition{FromDisplay: d.boolean(), Defined: d.rect()}
}

func (d *decoder) creationProperty() action.CreationProperty {
	kind := action.PropertyKind(d.u8())
	p := action.CreationProperty{Kind: kind}
	switch kind {
	case action.PropTransform:
		p.Transform = d.srt()
	case action.PropMorphIndex:
		p.MorphIndex = d.f64()
	case action.PropColoring:
		p.Coloring = d.coloring()
	case action.PropViewRect:
		p.ViewRect = d.rect()
	case action.PropDisplay:
		p.Display = d.id2()
		p.DisplayKnd = action.DisplayKindValue(d.u8())
	case action.PropLayer:
		p.Layer = stagewright.QuadTreeLayer(d.u32())
	case action.PropOrder:
		p.Order = int8(d.u8())
	case action.PropBounds:
		p.Bounds = d.boundsDefinition()
	}
	return p
}

func (d *decoder) updateProperty() action.UpdateProperty {
	kind := action.PropertyKind(d.u8())
	p := action.UpdateProperty{Kind: kind}
	switch kind {
	case action.PropTransform:
		p.Transform = d.srt()
		p.Easing = stagewright.Easing(d.u8())
		p.StepN = int(d.u32())
		p.Frames = d.u32()
	case action.PropMorphIndex:
		p.MorphIndex = d.f64()
		p.Easing = stagewright.Easing(d.u8())
		p.StepN = int(d.u32())
		p.Frames = d.u32()
	case action.PropColoring:
		p.Coloring = d.coloring()
		p.ColorSpace = stagewright.ColorSpace(d.u8())
		p.Easing = stagewright.Easing(d.u8())
		p.StepN = int(d.u32())
		p.Frames = d.u32()
	case action.PropViewRect:
		p.ViewRect = d.rect()
		p.Easing = stagewright.Easing(d.u8())
		p.StepN = int(d.u32())
		p.Frames = d.u32()
	case action.PropOrder:
		p.Order = int8(d.u8())
		p.Easing = stagewright.Easing(d.u8())
		p.StepN = int(d.u32())
		p.Frames = d.u32()
	case action.PropDisplay:
		p.Display = d.id2()
		p.DisplayKnd = action.DisplayKindValue(d.u8())
	case action.PropRemoveDisplay:
		// no payload
	case action.PropParent:
		p.Parent = d.id()
	case action.PropAddToLayer, action.PropRemoveFromLayer:
		p.Layer = stagewright.QuadTreeLayer(d.u32())
	case action.PropBounds:
		p.Bounds = d.boundsDefinition()
	case action.PropRemoveBounds:
		// no payload
	}
	return p
}
