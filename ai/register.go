// Package ai implements the Actor arm of the action-dispatch table spec
// §4.4 names (A_Look/A_Chase/A_*Attack/A_Pain/A_Scream/A_Fall/A_Explode):
// monster behavior that only ever runs as a state's action callback, never
// as its own per-tic system (package sim's AnimSystem already drives the
// state-tic countdown that reaches these).
package ai

import (
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// Register installs every Actor-kind callback into package sim's dispatch
// table. Called once at startup, before the first tic of any level.
func Register() {
	sim.RegisterActor(info.ActionLook, Look)
	sim.RegisterActor(info.ActionChase, Chase)
	sim.RegisterActor(info.ActionFaceTarget, FaceTarget)
	sim.RegisterActor(info.ActionPosAttack, PosAttack)
	sim.RegisterActor(info.ActionSPosAttack, SPosAttack)
	sim.RegisterActor(info.ActionCPosAttack, CPosAttack)
	sim.RegisterActor(info.ActionTroopAttack, TroopAttack)
	sim.RegisterActor(info.ActionSargAttack, SargAttack)
	sim.RegisterActor(info.ActionHeadAttack, HeadAttack)
	sim.RegisterActor(info.ActionSkullAttack, SkullAttack)
	sim.RegisterActor(info.ActionScream, Scream)
	sim.RegisterActor(info.ActionXScream, XScream)
	sim.RegisterActor(info.ActionPain, Pain)
	sim.RegisterActor(info.ActionFall, Fall)
	sim.RegisterActor(info.ActionExplode, Explode)
	sim.RegisterActor(info.ActionBarrelExplode, BarrelExplode)
	sim.RegisterActor(info.ActiveSound, ActiveSound)
}
