package flow

import "testing"

func TestWorkflowConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkflowConfig)
		wantErr bool
	}{
		{"Valid", func(w *WorkflowConfig) {}, false},
		{"EmptyStatusOrder", func(w *WorkflowConfig) { w.StatusOrder = nil }, true},
		{"MissingCycleStart", func(w *WorkflowConfig) { w.CycleStartStatus = "" }, true},
		{"UnknownCycleStart", func(w *WorkflowConfig) { w.CycleStartStatus = "Review" }, true},
		{"UnknownCycleEnd", func(w *WorkflowConfig) { w.CycleEndStatus = "Closed" }, true},
		{"BadClassification", func(w *WorkflowConfig) { w.Classification["To Do"] = "queued" }, true},
		{"NoDoneStatuses", func(w *WorkflowConfig) { w.DoneStatuses = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := testWorkflow()
			tt.mutate(wf)
			err := wf.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWorkflowConfigSets(t *testing.T) {
	wf := testWorkflow()

	if !wf.IsDone("Done") || wf.IsDone("In Progress") {
		t.Error("IsDone misclassifies statuses")
	}
	if !wf.IsActive("Testing") || wf.IsActive("To Do") {
		t.Error("IsActive misclassifies statuses")
	}
}
