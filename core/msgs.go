package core

// NavigateMsg asks the model to rebuild the breadcrumb trail from the active
// tab's route snapshot. Tabs emit it after internal navigation.
type NavigateMsg struct{}

// CrumbLabelMsg registers a display label for a route parameter once the
// entity behind it has loaded.
type CrumbLabelMsg struct {
	Key   string
	Label string
}

// StatusMsg sets the status bar text.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// CapsChangedMsg announces a change to the capability set; guards re-check.
type CapsChangedMsg struct{}
