package stats

import "github.com/go-dlt/dltcore/message"

// LevelDistribution tallies how many messages fell into each Log severity,
// plus a NonLog bucket for messages that carry no log level at all (no
// extended header, or an extended header whose mstp isn't Log).
type LevelDistribution struct {
	NonLog     uint64
	LogFatal   uint64
	LogError   uint64
	LogWarning uint64
	LogInfo    uint64
	LogDebug   uint64
	LogVerbose uint64
	LogInvalid uint64
}

func (d *LevelDistribution) record(level *message.LogLevel) {
	if level == nil {
		d.NonLog++
		return
	}

	switch *level {
	case message.LogFatal:
		d.LogFatal++
	case message.LogError:
		d.LogError++
	case message.LogWarn:
		d.LogWarning++
	case message.LogInfo:
		d.LogInfo++
	case message.LogDebug:
		d.LogDebug++
	case message.LogVerbose:
		d.LogVerbose++
	default:
		d.LogInvalid++
	}
}

// Merge adds other's counts into d, bucket by bucket.
func (d *LevelDistribution) Merge(other LevelDistribution) {
	d.NonLog += other.NonLog
	d.LogFatal += other.LogFatal
	d.LogError += other.LogError
	d.LogWarning += other.LogWarning
	d.LogInfo += other.LogInfo
	d.LogDebug += other.LogDebug
	d.LogVerbose += other.LogVerbose
	d.LogInvalid += other.LogInvalid
}

// TallyCollector is the bundled StatisticCollector: per-ecu, per-app, and
// per-context level distributions, plus a flag noting whether any
// non-verbose message was observed.
type TallyCollector struct {
	EcuIDs     map[string]*LevelDistribution
	AppIDs     map[string]*LevelDistribution
	ContextIDs map[string]*LevelDistribution

	ContainedNonVerbose bool
}

var _ StatisticCollector = (*TallyCollector)(nil)

// NewTallyCollector creates an empty TallyCollector.
func NewTallyCollector() *TallyCollector {
	return &TallyCollector{
		EcuIDs:     make(map[string]*LevelDistribution),
		AppIDs:     make(map[string]*LevelDistribution),
		ContextIDs: make(map[string]*LevelDistribution),
	}
}

// CollectStatistic implements StatisticCollector.
func (c *TallyCollector) CollectStatistic(s Statistic) error {
	tally(c.EcuIDs, ecuIDOf(s), s.LogLevel)

	if s.ExtendedHeader != nil {
		tally(c.AppIDs, s.ExtendedHeader.AppID, s.LogLevel)
		tally(c.ContextIDs, s.ExtendedHeader.CtxID, s.LogLevel)
	}

	if s.ExtendedHeader == nil || !s.IsVerbose {
		c.ContainedNonVerbose = true
	}

	return nil
}

func tally(m map[string]*LevelDistribution, key string, level *message.LogLevel) {
	d, ok := m[key]
	if !ok {
		d = &LevelDistribution{}
		m[key] = d
	}
	d.record(level)
}

// Merge combines other's tallies into c. Merge is commutative and
// associative: level distributions sum entry-wise and
// ContainedNonVerbose is ORed.
func (c *TallyCollector) Merge(other *TallyCollector) {
	mergeInto(c.EcuIDs, other.EcuIDs)
	mergeInto(c.AppIDs, other.AppIDs)
	mergeInto(c.ContextIDs, other.ContextIDs)
	c.ContainedNonVerbose = c.ContainedNonVerbose || other.ContainedNonVerbose
}

func mergeInto(dst, src map[string]*LevelDistribution) {
	for k, v := range src {
		d, ok := dst[k]
		if !ok {
			d = &LevelDistribution{}
			dst[k] = d
		}
		d.Merge(*v)
	}
}
