package engine

// System is the unit the Orchestrator drives once per tic. Priority
// controls ordering within a phase (mobj thinkers, sector thinkers,
// triggers — spec §4.8); lower values run first.
type System interface {
	Init(w *World)
	Update(w *World)
	Priority() int
}

// SystemBase gives a System a default Init/Priority so concrete systems
// only need to implement Update, matching the teacher's embedding idiom.
type SystemBase struct {
	priority int
}

func NewSystemBase(priority int) SystemBase { return SystemBase{priority: priority} }

func (b SystemBase) Init(w *World)  {}
func (b SystemBase) Priority() int { return b.priority }
