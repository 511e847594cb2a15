// Package filter compiles declarative filter configuration into a form that
// can be evaluated cheaply against each decoded message header, without
// ever looking at the payload.
//
// The compiled form never imports the message package: it takes the bits a
// caller can read off a standard/extended header directly (log level, app
// id, context id, ecu id), which keeps the message decoder free to call
// into filter without a cycle.
package filter

// IDLevel pairs an identifier with a log level, the shape DLF filter
// entries and LogInfo control responses carry.
type IDLevel struct {
	ID    string
	Level uint8
}

// Config is the declarative form a caller assembles by hand or a DLF loader
// produces.
type Config struct {
	MinLogLevel *uint8
	AppIDs      []string
	ContextIDs  []string
	EcuIDs      []string

	// AppIDCount and ContextIDCount record how many distinct app/context
	// ids are known to exist in the system the filter was built for
	// (e.g. from a prior LogInfo enumeration), regardless of how many of
	// them ended up in AppIDs/ContextIDs. Evaluate's rule 5 uses these to
	// decide whether an extended-header-less message should be dropped
	// conservatively.
	AppIDCount     int
	ContextIDCount int
}

// ProcessedFilterConfig is the compiled, read-only form Evaluate consumes.
type ProcessedFilterConfig struct {
	MinLogLevel    *uint8
	AppIDs         map[string]struct{}
	ContextIDs     map[string]struct{}
	EcuIDs         map[string]struct{}
	AppIDCount     int
	ContextIDCount int
}

// Compile builds a ProcessedFilterConfig from a declarative Config.
func Compile(cfg Config) *ProcessedFilterConfig {
	p := &ProcessedFilterConfig{
		MinLogLevel:    cfg.MinLogLevel,
		AppIDCount:     cfg.AppIDCount,
		ContextIDCount: cfg.ContextIDCount,
	}

	if len(cfg.AppIDs) > 0 {
		p.AppIDs = toSet(cfg.AppIDs)
	}
	if len(cfg.ContextIDs) > 0 {
		p.ContextIDs = toSet(cfg.ContextIDs)
	}
	if len(cfg.EcuIDs) > 0 {
		p.EcuIDs = toSet(cfg.EcuIDs)
	}

	return p
}

// CompileFromLevelPairs builds the set-based id lists from (id, level)
// pairs, retaining only ids whose level is numerically >= minLevel.
func CompileFromLevelPairs(appPairs, ctxPairs, ecuPairs []IDLevel, minLevel uint8, minLogLevel *uint8) *ProcessedFilterConfig {
	cfg := Config{
		MinLogLevel:    minLogLevel,
		AppIDs:         idsAtOrAbove(appPairs, minLevel),
		ContextIDs:     idsAtOrAbove(ctxPairs, minLevel),
		EcuIDs:         idsAtOrAbove(ecuPairs, minLevel),
		AppIDCount:     len(appPairs),
		ContextIDCount: len(ctxPairs),
	}

	return Compile(cfg)
}

func idsAtOrAbove(pairs []IDLevel, minLevel uint8) []string {
	var out []string
	for _, p := range pairs {
		if p.Level >= minLevel {
			out = append(out, p.ID)
		}
	}

	return out
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// Input is the information Evaluate needs about one message, read directly
// off its (possibly absent) extended header and its ecu id.
type Input struct {
	HasExtendedHeader bool
	IsLog             bool
	Level             uint8
	AppID             string
	CtxID             string
	EcuID             string
}

// Evaluate reports whether the message described by in should be dropped,
// per the compiled config. Rules are evaluated in order; the first
// matching rule short-circuits the rest.
func (p *ProcessedFilterConfig) Evaluate(in Input) bool {
	if p == nil {
		return false
	}

	if p.MinLogLevel != nil && in.IsLog && in.Level > *p.MinLogLevel {
		return true
	}

	// App/context id membership only means something when the message
	// actually carries an extended header; without one, rule 5 below
	// decides instead of an empty-string membership test.
	if in.HasExtendedHeader {
		if len(p.AppIDs) > 0 {
			if _, ok := p.AppIDs[in.AppID]; !ok {
				return true
			}
		}

		if len(p.ContextIDs) > 0 {
			if _, ok := p.ContextIDs[in.CtxID]; !ok {
				return true
			}
		}
	}

	if len(p.EcuIDs) > 0 {
		if _, ok := p.EcuIDs[in.EcuID]; !ok {
			return true
		}
	}

	if !in.HasExtendedHeader {
		appConfigured := len(p.AppIDs) > 0 && p.AppIDCount > 0 && len(p.AppIDs) < p.AppIDCount
		ctxConfigured := len(p.ContextIDs) > 0 && p.ContextIDCount > 0 && len(p.ContextIDs) < p.ContextIDCount
		if appConfigured || ctxConfigured {
			return true
		}
	}

	return false
}
