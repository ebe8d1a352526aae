package domain

// PlanModel is a selectable optimization strategy.
//
// Select and Selected are kept exactly as the data producer sends them.
// Selected is the checkbox binding value and is not a boolean.
type PlanModel struct {
	SeqNo            int
	Select           int
	OptimizationType int
	Name             string
	Description      string
	Remark           string
	Selected         string
}
