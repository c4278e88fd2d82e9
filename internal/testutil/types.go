package testutil

// Case is one schematic regression case declared in an HCL fixture file.
type Case struct {
	Name   string      `hcl:"name,label"`
	Grid   string      `hcl:"grid"`
	Error  string      `hcl:"error,optional"`
	Expect *Expect     `hcl:"expect,block"`
	Gears  []*GearCase `hcl:"gear,block"`
}

// Expect holds the two task results for a case.
type Expect struct {
	PartSum int `hcl:"part_sum"`
	GearSum int `hcl:"gear_sum"`
}

// GearCase pins the evaluation of a single '*' cell.
type GearCase struct {
	At      []int `hcl:"at"`
	Ratio   int   `hcl:"ratio,optional"`
	Invalid bool  `hcl:"invalid,optional"`
	Found   int   `hcl:"found,optional"`
}

type caseFile struct {
	Cases []*Case `hcl:"case,block"`
}
