package domain

// StageKind names one stage of a genre's procedure.
type StageKind int

const (
	// StageOutOfRange is returned for step 0, steps past the end of the
	// procedure and the unselected genre.
	StageOutOfRange StageKind = iota
	StageChooseTitle
	StageTranslate
	StageEdit
	StageProofread
	StagePublish
)

func (k StageKind) String() string {
	switch k {
	case StageChooseTitle:
		return "choose_title"
	case StageTranslate:
		return "translate"
	case StageEdit:
		return "edit"
	case StageProofread:
		return "proofread"
	case StagePublish:
		return "publish"
	default:
		return "out_of_range"
	}
}

// Label is the short name shown on the step indicator.
func (k StageKind) Label() string {
	switch k {
	case StageChooseTitle:
		return "Choose title"
	case StageTranslate:
		return "Translate"
	case StageEdit:
		return "Edit article"
	case StageProofread:
		return "Proofread"
	case StagePublish:
		return "Publish"
	default:
		return ""
	}
}

// Stage is the result of dispatching a step index for a genre.
type Stage struct {
	Genre Genre
	Kind  StageKind
	Step  int
}

// InRange reports whether the stage maps to a real procedure step.
func (s Stage) InRange() bool {
	return s.Kind != StageOutOfRange
}

var procedures = map[Genre][]StageKind{
	GenreOriginal:    {StageEdit, StageProofread, StagePublish},
	GenreTranslation: {StageChooseTitle, StageTranslate, StageProofread, StagePublish},
}

// Procedure returns the ordered stages of a genre. Step i is Procedure[i-1].
func Procedure(g Genre) []StageKind {
	stages := procedures[g]
	out := make([]StageKind, len(stages))
	copy(out, stages)
	return out
}

// StepCount returns N, the number of numbered steps for the genre.
func StepCount(g Genre) int {
	return len(procedures[g])
}

// Dispatch maps a step index to the stage for the genre.
func Dispatch(g Genre, step int) Stage {
	stages := procedures[g]
	if step < 1 || step > len(stages) {
		return Stage{Genre: g, Kind: StageOutOfRange, Step: step}
	}
	return Stage{Genre: g, Kind: stages[step-1], Step: step}
}
