package fibex

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/internal/idhash"
)

// linePosReader wraps an io.Reader, tracking the 1-based line/column of the
// most recently read byte. FIBEX documents aren't necessarily seekable, so
// this is how structural/attribute errors report a source position without
// re-reading or buffering the whole input.
type linePosReader struct {
	r    *bufio.Reader
	line int
	col  int
}

func newLinePosReader(r io.Reader) *linePosReader {
	return &linePosReader{r: bufio.NewReader(r), line: 1, col: 1}
}

// ReadByte makes linePosReader an io.ByteReader, which xml.Decoder reads
// directly instead of adding its own read-ahead buffer, so the tracked
// position stays in step with the decoder.
func (lr *linePosReader) ReadByte() (byte, error) {
	b, err := lr.r.ReadByte()
	if err == nil && b == '\n' {
		lr.line, lr.col = lr.line+1, 1
	} else if err == nil {
		lr.col++
	}

	return b, err
}

func (lr *linePosReader) Read(p []byte) (int, error) {
	n, err := lr.r.Read(p)
	for _, b := range p[:n] {
		if b == '\n' {
			lr.line++
			lr.col = 1
		} else {
			lr.col++
		}
	}

	return n, err
}

func (lr *linePosReader) pos() (line, col int) { return lr.line, lr.col }

// xmlCursor pairs the xml.Decoder element handlers walk with the
// linePosReader feeding it, so a handler that finds a missing mandatory
// attribute or tag can report where in the document it was.
type xmlCursor struct {
	dec *xml.Decoder
	lr  *linePosReader
}

func (c *xmlCursor) pos() (line, col int) { return c.lr.pos() }

func frameKey(ctxID, appID string, frameID uint32) uint64 {
	return idhash.FrameKey(ctxID, appID, frameID)
}

type pduData struct {
	description string
	signalRefs  []string
}

type frameData struct {
	id          string
	shortName   string
	appID       string
	ctxID       string
	messageType string
	messageInfo string
	pduRefs     []string
}

type loadState struct {
	pdus    map[string]pduData
	frames  []frameData
	signals map[string]string // signal id -> coding ref
	codings map[string]string // coding id -> base data type
}

// LoadFiles opens and loads fibex metadata from the given file paths, in
// order, combining them into a single Metadata exactly as Load does.
func LoadFiles(paths ...string) (*Metadata, error) {
	readers := make([]io.Reader, len(paths))
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("fibex: opening %s: %w", p, err)
		}
		defer f.Close()

		readers[i] = f
	}

	return Load(readers...)
}

// Load streams each source's FIBEX XML in order, resolving PDU, FRAME,
// SIGNAL, and CODING elements wherever they occur (not only at the
// schema's canonical nesting depth, matching the flat event scan the
// format's own tooling uses), and combines them into one Metadata. A
// duplicate PDU or FRAME id across inputs is kept as first-seen and logged
// at warn level rather than failing the whole load.
func Load(sources ...io.Reader) (*Metadata, error) {
	state := &loadState{
		pdus:    make(map[string]pduData),
		signals: make(map[string]string),
		codings: make(map[string]string),
	}

	for _, src := range sources {
		if err := loadOne(src, state); err != nil {
			return nil, err
		}
	}

	return buildMetadata(state), nil
}

func loadOne(r io.Reader, state *loadState) error {
	lr := newLinePosReader(r)
	c := &xmlCursor{dec: xml.NewDecoder(lr), lr: lr}

	for {
		tok, err := c.dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return fmt.Errorf("fibex: xml error at byte offset %d: %w", c.dec.InputOffset(), err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "PDU":
			id := attrVal(se, "ID")
			if id == "" {
				line, col := c.pos()
				return errs.NewAttribute("PDU", "ID", line, col)
			}

			pdu, err := readPdu(c)
			if err != nil {
				return fmt.Errorf("fibex: reading PDU %q: %w", id, err)
			}

			if _, exists := state.pdus[id]; exists {
				slog.Warn("fibex: duplicate PDU id, keeping first", "id", id)
				continue
			}
			state.pdus[id] = pdu

		case "FRAME":
			id := attrVal(se, "ID")
			if id == "" {
				line, col := c.pos()
				return errs.NewAttribute("FRAME", "ID", line, col)
			}

			fr, err := readFrame(c)
			if err != nil {
				return fmt.Errorf("fibex: reading FRAME %q: %w", id, err)
			}
			fr.id = id
			state.frames = append(state.frames, fr)

		case "SIGNAL":
			id := attrVal(se, "ID")
			if id == "" {
				line, col := c.pos()
				return errs.NewAttribute("SIGNAL", "ID", line, col)
			}

			_, codingRef, err := readSignal(c, se)
			if err != nil {
				return fmt.Errorf("fibex: reading SIGNAL %q: %w", id, err)
			}
			state.signals[id] = codingRef

		case "CODING":
			id := attrVal(se, "ID")
			if id == "" {
				line, col := c.pos()
				return errs.NewAttribute("CODING", "ID", line, col)
			}

			_, baseType, err := readCoding(c, se)
			if err != nil {
				return fmt.Errorf("fibex: reading CODING %q: %w", id, err)
			}
			state.codings[id] = baseType
		}
	}
}

func buildMetadata(state *loadState) *Metadata {
	m := &Metadata{
		FramesByKey:       make(map[uint64]FrameMetadata),
		FramesByID:        make(map[string]FrameMetadata),
		framesByNumericID: make(map[uint32]FrameMetadata),
	}

	seenIDs := make(map[string]struct{})

	for _, fd := range state.frames {
		fr := FrameMetadata{
			ID:            fd.id,
			ShortName:     fd.shortName,
			ApplicationID: fd.appID,
			ContextID:     fd.ctxID,
			MessageType:   fd.messageType,
			MessageInfo:   fd.messageInfo,
		}

		if n, err := strconv.ParseUint(fd.id, 10, 32); err == nil {
			fr.FrameID = uint32(n)
		}

		for _, pduRef := range fd.pduRefs {
			pd, ok := state.pdus[pduRef]
			if !ok {
				slog.Warn("fibex: frame references unknown PDU, skipping it", "frame_id", fd.id, "pdu_ref", pduRef)
				continue
			}

			fr.Pdus = append(fr.Pdus, PduMetadata{
				Description: pd.description,
				SignalTypes: resolveSignalTypes(pd.signalRefs, state.signals, state.codings),
			})
		}

		if _, dup := seenIDs[fd.id]; dup {
			slog.Warn("fibex: duplicate FRAME id, keeping first", "id", fd.id)
			continue
		}
		seenIDs[fd.id] = struct{}{}

		m.FramesByID[fd.id] = fr
		if fr.FrameID != 0 {
			if _, exists := m.framesByNumericID[fr.FrameID]; !exists {
				m.framesByNumericID[fr.FrameID] = fr
			}
		}

		if fr.HasIdentification() {
			key := frameKey(fr.ContextID, fr.ApplicationID, fr.FrameID)
			if _, exists := m.FramesByKey[key]; exists {
				slog.Warn("fibex: duplicate frame context_id/application_id/frame_id", "context_id", fr.ContextID, "application_id", fr.ApplicationID, "frame_id", fd.id)
			} else {
				m.FramesByKey[key] = fr
			}
		}
	}

	return m
}

func resolveSignalTypes(signalRefs []string, signals, codings map[string]string) []argument.TypeInfo {
	var types []argument.TypeInfo
	for _, ref := range signalRefs {
		ti, ok := TypeInfoForSignalRef(ref, signals, codings)
		if !ok {
			continue
		}
		types = append(types, ti)
	}

	return types
}

type seqRef struct {
	seq int
	ref string
}

func readPdu(c *xmlCursor) (pduData, error) {
	var pdu pduData
	var refs []seqRef

	for {
		tok, err := c.dec.Token()
		if err != nil {
			return pduData{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "DESC":
				desc, err := readCharData(c)
				if err != nil {
					return pduData{}, err
				}
				pdu.description = desc
			case "SIGNAL-INSTANCE":
				seq := attrInt(t, "SEQUENCE-NUMBER")
				ref, err := readInstanceRef(c, "SIGNAL-INSTANCE", "SIGNAL-REF")
				if err != nil {
					return pduData{}, err
				}
				refs = append(refs, seqRef{seq, ref})
			default:
				// Wrapper elements like SIGNAL-INSTANCES are left alone
				// rather than skipped, so their children (SIGNAL-INSTANCE)
				// surface as later tokens in this same loop.
			}
		case xml.EndElement:
			if t.Name.Local == "PDU" {
				sort.SliceStable(refs, func(i, j int) bool { return refs[i].seq < refs[j].seq })
				pdu.signalRefs = make([]string, len(refs))
				for i, r := range refs {
					pdu.signalRefs[i] = r.ref
				}

				return pdu, nil
			}
		}
	}
}

func readFrame(c *xmlCursor) (frameData, error) {
	var fr frameData
	var refs []seqRef

	for {
		tok, err := c.dec.Token()
		if err != nil {
			return frameData{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "SHORT-NAME":
				name, err := readCharData(c)
				if err != nil {
					return frameData{}, err
				}
				fr.shortName = name
			case "PDU-INSTANCE":
				seq := attrInt(t, "SEQUENCE-NUMBER")
				ref, err := readInstanceRef(c, "PDU-INSTANCE", "PDU-REF")
				if err != nil {
					return frameData{}, err
				}
				refs = append(refs, seqRef{seq, ref})
			case "MANUFACTURER-EXTENSION":
				ext, err := readManufacturerExtension(c)
				if err != nil {
					return frameData{}, err
				}
				fr.appID = ext.appID
				fr.ctxID = ext.ctxID
				fr.messageType = ext.messageType
				fr.messageInfo = ext.messageInfo
			default:
				// Wrapper elements like PDU-INSTANCES are left alone
				// rather than skipped, so their children (PDU-INSTANCE)
				// surface as later tokens in this same loop.
			}
		case xml.EndElement:
			if t.Name.Local == "FRAME" {
				if fr.shortName == "" {
					line, col := c.pos()
					return frameData{}, errs.NewStructural("FRAME is missing mandatory SHORT-NAME", line, col)
				}

				sort.SliceStable(refs, func(i, j int) bool { return refs[i].seq < refs[j].seq })
				fr.pduRefs = make([]string, len(refs))
				for i, r := range refs {
					fr.pduRefs[i] = r.ref
				}

				return fr, nil
			}
		}
	}
}

type manufacturerExt struct {
	appID       string
	ctxID       string
	messageType string
	messageInfo string
}

func readManufacturerExtension(c *xmlCursor) (manufacturerExt, error) {
	var ext manufacturerExt

	for {
		tok, err := c.dec.Token()
		if err != nil {
			return manufacturerExt{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var err error
			switch t.Name.Local {
			case "APPLICATION_ID":
				ext.appID, err = readCharData(c)
			case "CONTEXT_ID":
				ext.ctxID, err = readCharData(c)
			case "MESSAGE_TYPE":
				ext.messageType, err = readCharData(c)
			case "MESSAGE_INFO":
				ext.messageInfo, err = readCharData(c)
			default:
				err = c.dec.Skip()
			}
			if err != nil {
				return manufacturerExt{}, err
			}
		case xml.EndElement:
			if t.Name.Local == "MANUFACTURER-EXTENSION" {
				return ext, nil
			}
		}
	}
}

// readInstanceRef reads the ID-REF attribute off a single refTag child
// (e.g. SIGNAL-REF inside SIGNAL-INSTANCE, PDU-REF inside PDU-INSTANCE)
// and consumes tokens through the matching end of endTag. ID-REF is
// mandatory on refTag; its absence is an AttributeError rather than a
// silently empty reference.
func readInstanceRef(c *xmlCursor, endTag, refTag string) (string, error) {
	var ref string
	var sawRefTag bool

	for {
		tok, err := c.dec.Token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == refTag {
				sawRefTag = true
				ref = attrVal(t, "ID-REF")
			}
			if err := c.dec.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			if t.Name.Local == endTag {
				if sawRefTag && ref == "" {
					line, col := c.pos()
					return "", errs.NewAttribute(refTag, "ID-REF", line, col)
				}

				return ref, nil
			}
		}
	}
}

func readSignal(c *xmlCursor, start xml.StartElement) (id, codingRef string, err error) {
	id = attrVal(start, "ID")

	for {
		tok, terr := c.dec.Token()
		if terr != nil {
			return id, codingRef, terr
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "CODING-REF" {
				codingRef = attrVal(t, "ID-REF")
			}
			if err := c.dec.Skip(); err != nil {
				return id, codingRef, err
			}
		case xml.EndElement:
			if t.Name.Local == "SIGNAL" {
				return id, codingRef, nil
			}
		}
	}
}

func readCoding(c *xmlCursor, start xml.StartElement) (id, baseType string, err error) {
	id = attrVal(start, "ID")

	for {
		tok, terr := c.dec.Token()
		if terr != nil {
			return id, baseType, terr
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "CODED-TYPE" {
				baseType = attrVal(t, "BASE-DATA-TYPE")
			}
			if err := c.dec.Skip(); err != nil {
				return id, baseType, err
			}
		case xml.EndElement:
			if t.Name.Local == "CODING" {
				return id, baseType, nil
			}
		}
	}
}

func readCharData(c *xmlCursor) (string, error) {
	var sb strings.Builder

	for {
		tok, err := c.dec.Token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if err := c.dec.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return strings.TrimSpace(sb.String()), nil
		}
	}
}

func attrVal(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}

	return ""
}

func attrInt(se xml.StartElement, local string) int {
	n, _ := strconv.Atoi(attrVal(se, local))
	return n
}
