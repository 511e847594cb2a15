// Package dlf loads DLF ("DLT filter") XML files — the filter
// definitions written out by DLT Viewer — into a Config, which
// Config.Compile turns into a filter.ProcessedFilterConfig.
package dlf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-dlt/dltcore/filter"
)

// Config is the declarative form recovered from a .dlf file: one
// (id, log level) pair per enabled ecu/app/context filter entry, plus the
// count of app/context ids emitted into AppIDs/ContextIDs. An id whose own
// enable* flag was not "1", or whose whole entry was discarded, is not
// counted.
type Config struct {
	EcuIDs         []filter.IDLevel
	AppIDs         []filter.IDLevel
	ContextIDs     []filter.IDLevel
	AppIDCount     int
	ContextIDCount int
}

// Compile turns a loaded Config into a filter.ProcessedFilterConfig,
// keeping only entries at or above minLevel and attaching minLogLevel as
// the message-level cutoff.
func (c Config) Compile(minLevel uint8, minLogLevel *uint8) *filter.ProcessedFilterConfig {
	return filter.CompileFromLevelPairs(c.AppIDs, c.ContextIDs, c.EcuIDs, minLevel, minLogLevel)
}

// LoadFile opens and loads the .dlf file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("dlf: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a .dlf document from r.
func Load(r io.Reader) (Config, error) {
	dec := xml.NewDecoder(r)

	var cfg Config

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return cfg, nil
			}

			return Config{}, fmt.Errorf("dlf: xml error at byte offset %d: %w", dec.InputOffset(), err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "filter" {
			continue
		}

		entry, err := readFilterEntry(dec)
		if err != nil {
			return Config{}, fmt.Errorf("dlf: reading filter entry: %w", err)
		}

		if entry == nil {
			continue
		}

		if entry.ecuID != "" {
			cfg.EcuIDs = append(cfg.EcuIDs, filter.IDLevel{ID: entry.ecuID, Level: entry.level})
		}
		if entry.appID != "" {
			cfg.AppIDs = append(cfg.AppIDs, filter.IDLevel{ID: entry.appID, Level: entry.level})
			cfg.AppIDCount++
		}
		if entry.ctxID != "" {
			cfg.ContextIDs = append(cfg.ContextIDs, filter.IDLevel{ID: entry.ctxID, Level: entry.level})
			cfg.ContextIDCount++
		}
	}
}

type filterEntry struct {
	ecuID string
	appID string
	ctxID string
	level uint8
}

// readFilterEntry consumes one <filter>...</filter> block. It mirrors the
// enable-flag gating a viewer applies when writing these files out: an
// id is kept only if its matching enable* flag was "1", and the whole
// entry is discarded unless enablefilter and enableLogLevelMax both were.
func readFilterEntry(dec *xml.Decoder) (*filterEntry, error) {
	var (
		ecuID, appID, ctxID string
		logLevelMax         uint8
		haveLogLevelMax     bool
		enableEcuID         bool
		enableAppID         bool
		enableCtxID         bool
		enableLogLevelMax   bool
		enableFilter        bool
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			text, err := readCharData(dec)
			if err != nil {
				return nil, err
			}

			switch t.Name.Local {
			case "ecuid":
				ecuID = text
			case "applicationid":
				appID = text
			case "contextid":
				ctxID = text
			case "logLevelMax":
				n, err := strconv.Atoi(text)
				if err != nil {
					return nil, fmt.Errorf("invalid logLevelMax %q: %w", text, err)
				}
				logLevelMax = uint8(n)
				haveLogLevelMax = true
			case "enableecuid":
				enableEcuID = text == "1"
			case "enableapplicationid":
				enableAppID = text == "1"
			case "enablecontextid":
				enableCtxID = text == "1"
			case "enableLogLevelMax":
				enableLogLevelMax = text == "1"
			case "enablefilter":
				enableFilter = text == "1"
			}

		case xml.EndElement:
			if t.Name.Local == "filter" {
				if !enableFilter || !enableLogLevelMax || !haveLogLevelMax {
					return nil, nil
				}

				entry := &filterEntry{level: logLevelMax}
				if enableEcuID {
					entry.ecuID = ecuID
				}
				if enableAppID {
					entry.appID = appID
				}
				if enableCtxID {
					entry.ctxID = ctxID
				}

				return entry, nil
			}
		}
	}
}

// readCharData reads a leaf element's text content, consuming tokens
// through its own end tag. Elements with no text content yield "".
func readCharData(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 0

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return strings.TrimSpace(sb.String()), nil
			}
			depth--
		}
	}
}
