package resource

import "github.com/emrgen/resourcesync/internal/model"

// Profile describes how one parent kind takes part in reconciliation.
type Profile struct {
	Kind model.ParentKind
	// AutoDetectedFields are the free text tags. An association carrying any
	// of them is auto-detected.
	AutoDetectedFields []string
	// ExplicitField tags resources attached directly by a user.
	ExplicitField string
}

var profiles = map[model.ParentKind]Profile{
	model.KindActivityReport: {
		Kind: model.KindActivityReport,
		AutoDetectedFields: []string{
			model.SourceFieldReportContext,
			model.SourceFieldReportAdditionalNotes,
		},
		ExplicitField: model.SourceFieldResource,
	},
	model.KindActivityReportObjective: {
		Kind: model.KindActivityReportObjective,
		AutoDetectedFields: []string{
			model.SourceFieldReportObjectiveTitle,
			model.SourceFieldReportObjectiveTTAProvided,
		},
		ExplicitField: model.SourceFieldResource,
	},
	model.KindObjective: {
		Kind:               model.KindObjective,
		AutoDetectedFields: []string{model.SourceFieldObjectiveTitle},
		ExplicitField:      model.SourceFieldResource,
	},
	model.KindNextStep: {
		Kind:               model.KindNextStep,
		AutoDetectedFields: []string{model.SourceFieldNextStepNote},
		ExplicitField:      model.SourceFieldResource,
	},
	model.KindGoal: {
		Kind: model.KindGoal,
		AutoDetectedFields: []string{
			model.SourceFieldGoalName,
			model.SourceFieldGoalTimeframe,
		},
		ExplicitField: model.SourceFieldResource,
	},
	model.KindGoalTemplate: {
		Kind:               model.KindGoalTemplate,
		AutoDetectedFields: []string{model.SourceFieldGoalTemplateName},
		ExplicitField:      model.SourceFieldResource,
	},
	model.KindActivityReportGoal: {
		Kind: model.KindActivityReportGoal,
		AutoDetectedFields: []string{
			model.SourceFieldReportGoalName,
			model.SourceFieldReportGoalTimeframe,
		},
		ExplicitField: model.SourceFieldResource,
	},
	model.KindObjectiveTemplate: {
		Kind:               model.KindObjectiveTemplate,
		AutoDetectedFields: []string{model.SourceFieldObjectiveTemplateTitle},
		ExplicitField:      model.SourceFieldResource,
	},
}

// ProfileFor returns the profile registered for kind.
func ProfileFor(kind model.ParentKind) (Profile, bool) {
	profile, ok := profiles[kind]
	return profile, ok
}

// IsAutoDetected reports whether the association tags include one of the
// profile's free text fields.
func (p Profile) IsAutoDetected(sourceFields []string) bool {
	return IsAutoDetected(sourceFields, p.AutoDetectedFields)
}

// IsAutoDetected is true when sourceFields and autoDetectedFields share at
// least one tag. Either being empty yields false.
func IsAutoDetected(sourceFields, autoDetectedFields []string) bool {
	if len(sourceFields) == 0 || len(autoDetectedFields) == 0 {
		return false
	}

	return newFieldSet(sourceFields).ContainsAny(autoDetectedFields...)
}
