package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fortio.org/safecast"
)

// Direction says which side of its axis an "agree" answer supports.
type Direction string

const (
	DirectionLeft  Direction = "Left"
	DirectionRight Direction = "Right"
)

// IsLeft reports whether d is Left. Anything else counts as Right.
func (d Direction) IsLeft() bool {
	return strings.EqualFold(strings.TrimSpace(string(d)), string(DirectionLeft))
}

// Question is one item of the question bank. Weights are pointers so an
// absent field can be told apart from an explicit zero.
type Question struct {
	ID             string    `json:"id"                        yaml:"id"              toml:"id"`
	Axis           string    `json:"axis"                      yaml:"axis"            toml:"axis"`
	Direction      Direction `json:"direction"                 yaml:"direction"       toml:"direction"`
	Text           string    `json:"text,omitempty"            yaml:"text,omitempty"  toml:"text,omitempty"`
	Weight         *float64  `json:"weight,omitempty"          yaml:"weight"          toml:"weight"`
	WeightAgree    *float64  `json:"weight_agree,omitempty"    yaml:"weight_agree"    toml:"weight_agree"`
	WeightDisagree *float64  `json:"weight_disagree,omitempty" yaml:"weight_disagree" toml:"weight_disagree"`
}

// AgreeWeight falls back weight_agree -> weight -> 1.
func (q Question) AgreeWeight() float64 {
	return firstValidWeight(q.WeightAgree, q.Weight)
}

// DisagreeWeight falls back weight_disagree -> weight -> 1.
func (q Question) DisagreeWeight() float64 {
	return firstValidWeight(q.WeightDisagree, q.Weight)
}

func firstValidWeight(candidates ...*float64) float64 {
	for _, w := range candidates {
		if w != nil && validWeight(*w) {
			return *w
		}
	}
	return 1
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// QuestionBank is the loaded set of questions plus its version identity.
type QuestionBank struct {
	Version   string     `json:"version,omitempty" yaml:"version"   toml:"version"`
	Title     string     `json:"title,omitempty"   yaml:"title"     toml:"title"`
	Source    string     `json:"source,omitempty"  yaml:"source"    toml:"source"`
	Questions []Question `json:"questions"         yaml:"questions" toml:"questions"`

	// Digest is the hex sha256 of the file the bank was read from.
	Digest string `json:"-" yaml:"-" toml:"-"`
}

// Answers maps question id to an answer in {-2..2}. Missing ids are unanswered.
type Answers map[string]int

// InvalidAnswer is stored for inputs that do not fit an int; it scores as 0.
const InvalidAnswer = math.MinInt32

// AnswersFromInt64 narrows wide integers (JSON, YAML, TOML decoders) into Answers.
func AnswersFromInt64(raw map[string]int64) Answers {
	out := make(Answers, len(raw))
	for id, v := range raw {
		n, err := safecast.Conv[int32](v)
		if err != nil {
			out[id] = InvalidAnswer
			continue
		}
		out[id] = int(n)
	}
	return out
}

// AxisAggregate is the per-axis triple.
// A is the signed sum over answered questions; B and C are the disagree and
// agree weight mass of every question on the axis, answered or not.
type AxisAggregate struct {
	A         float64 `json:"a"         msgpack:"a"`
	B         float64 `json:"b"         msgpack:"b"`
	C         float64 `json:"c"         msgpack:"c"`
	Questions int     `json:"questions" msgpack:"questions"`
	Answered  int     `json:"answered"  msgpack:"answered"`
}

// NormalizedAxis holds the display split and raw score of one axis. The
// three values are computed together and must not be derived from each other.
type NormalizedAxis struct {
	LeftPercent   float64 `json:"left_percent"`
	RightPercent  float64 `json:"right_percent"`
	RawNormalized float64 `json:"raw_normalized"`
}

// PositionStrength describes how far an axis sits from its center.
type PositionStrength string

const (
	StrengthLeaning   PositionStrength = "Leaning"
	StrengthInclined  PositionStrength = "Inclined"
	StrengthCommitted PositionStrength = "Committed"
	StrengthExtreme   PositionStrength = "Extreme"
)

// StrengthFor maps a distance from center to its band.
func StrengthFor(distance float64) PositionStrength {
	switch {
	case distance <= 9:
		return StrengthLeaning
	case distance <= 19:
		return StrengthInclined
	case distance <= 29:
		return StrengthCommitted
	default:
		return StrengthExtreme
	}
}

// AxisResult is one row of the axis breakdown.
type AxisResult struct {
	AxisName         string           `json:"axis_name"         msgpack:"axis_name"`
	LeftLabel        string           `json:"left_label"        msgpack:"left_label"`
	RightLabel       string           `json:"right_label"       msgpack:"right_label"`
	LeftPercent      float64          `json:"left_percent"      msgpack:"left_percent"`
	RightPercent     float64          `json:"right_percent"     msgpack:"right_percent"`
	RawNormalized    float64          `json:"raw_normalized"    msgpack:"raw_normalized"`
	UserPosition     string           `json:"user_position"     msgpack:"user_position"`
	PositionStrength PositionStrength `json:"position_strength" msgpack:"position_strength"`
	Letter           string           `json:"letter"            msgpack:"letter"`
	Aggregate        AxisAggregate    `json:"aggregate"         msgpack:"aggregate"`
}

// Normalized returns the normalized triple of the row.
func (r AxisResult) Normalized() NormalizedAxis {
	return NormalizedAxis{LeftPercent: r.LeftPercent, RightPercent: r.RightPercent, RawNormalized: r.RawNormalized}
}

// DistanceFromCenter is |rawNormalized|.
func (r AxisResult) DistanceFromCenter() float64 { return math.Abs(r.RawNormalized) }

// SecondaryArchetype is a close alternate classification.
type SecondaryArchetype struct {
	Name         string `json:"name"          msgpack:"name"`
	Code         string `json:"code"          msgpack:"code"`
	MatchPercent int    `json:"match_percent" msgpack:"match_percent"`
	FlippedAxis  string `json:"flipped_axis"  msgpack:"flipped_axis"`
}

// Classification is the full output of one classification run.
type Classification struct {
	Code          string               `json:"code"                   msgpack:"code"`
	Name          string               `json:"name"                   msgpack:"name"`
	Traits        []string             `json:"traits"                 msgpack:"traits"`
	Axes          []AxisResult         `json:"axes"                   msgpack:"axes"`
	Secondaries   []SecondaryArchetype `json:"secondaries"            msgpack:"secondaries"`
	Issues        []Issue              `json:"issues,omitempty"       msgpack:"issues"`
	QuestionCount int                  `json:"question_count"         msgpack:"question_count"`
	AnsweredCount int                  `json:"answered_count"         msgpack:"answered_count"`
	BankVersion   string               `json:"bank_version,omitempty" msgpack:"bank_version"`
	Timestamp     time.Time            `json:"timestamp"              msgpack:"timestamp"`
}

// Known reports whether the code resolved to a named archetype.
func (c Classification) Known() bool { return c.Name != UnknownArchetypeName }

// Issue represents a problem found while ingesting the question bank.
type Issue struct {
	Severity   string `json:"severity"              msgpack:"severity"`
	QuestionID string `json:"question_id,omitempty" msgpack:"question_id"`
	Message    string `json:"message"               msgpack:"message"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// CheckIDs rejects banks that cannot be answered unambiguously: no
// questions, a question without id, or two questions sharing one.
func (b *QuestionBank) CheckIDs() error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}
	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w (question #%d)", ErrMissingID, i+1)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w %q", ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
