package model

// ParentKind names an entity type whose free text is scanned for resources.
type ParentKind string

const (
	KindActivityReport          ParentKind = "activityReport"
	KindActivityReportObjective ParentKind = "activityReportObjective"
	KindObjective               ParentKind = "objective"
	KindNextStep                ParentKind = "nextStep"
	KindGoal                    ParentKind = "goal"
	KindGoalTemplate            ParentKind = "goalTemplate"
	KindActivityReportGoal      ParentKind = "activityReportGoal"
	KindObjectiveTemplate       ParentKind = "objectiveTemplate"
)

// ParentKinds lists every kind in a stable order.
var ParentKinds = []ParentKind{
	KindActivityReport,
	KindActivityReportObjective,
	KindObjective,
	KindNextStep,
	KindGoal,
	KindGoalTemplate,
	KindActivityReportGoal,
	KindObjectiveTemplate,
}

// ParseParentKind accepts the kind name as used in ParentKind values.
func ParseParentKind(name string) (ParentKind, bool) {
	for _, kind := range ParentKinds {
		if string(kind) == name {
			return kind, true
		}
	}

	return "", false
}

func (k ParentKind) String() string {
	return string(k)
}

// Source field tags. The same tag name can be used by several kinds; the
// association table it is stored in disambiguates it.
const (
	// SourceFieldResource marks a resource explicitly attached by a user.
	SourceFieldResource = "resource"

	SourceFieldReportContext         = "context"
	SourceFieldReportAdditionalNotes = "additionalNotes"

	SourceFieldReportObjectiveTitle       = "title"
	SourceFieldReportObjectiveTTAProvided = "ttaProvided"

	SourceFieldObjectiveTitle = "title"

	SourceFieldNextStepNote = "note"

	SourceFieldGoalName      = "name"
	SourceFieldGoalTimeframe = "timeframe"

	SourceFieldGoalTemplateName = "name"

	SourceFieldReportGoalName      = "name"
	SourceFieldReportGoalTimeframe = "timeframe"

	SourceFieldObjectiveTemplateTitle = "title"
)
