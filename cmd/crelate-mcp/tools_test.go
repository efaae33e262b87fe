package main

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func allTools() []mcp.Tool {
	return []mcp.Tool{
		createListContactsTool(),
		createGetContactTool(),
		createCreateContactTool(),
		createUpdateContactTool(),
		createGetContactCountTool(),
		createGetContactHistoryTool(),
		createGetContactSourcesTool(),
		createListCandidatesTool(),
		createGetCandidateTool(),
		createCreateCandidateTool(),
		createListJobsTool(),
		createGetJobTool(),
		createCreateJobTool(),
		createGetJobCountTool(),
		createGetJobHistoryTool(),
		createGetJobContactsTool(),
		createGetJobContactHistoryTool(),
		createListCompaniesTool(),
		createGetCompanyTool(),
		createCreateCompanyTool(),
		createGetCompanyCountTool(),
		createGetCompanySourcesTool(),
		createCreateNoteTool(),
		createCreateTaskTool(),
		createGetActivitiesTool(),
		createGetActivityCountTool(),
		createGetApplicationsTool(),
		createGetApplicationCountTool(),
		createGetPlacementsTool(),
		createGetPlacementInfoTool(),
		createGetUsersTool(),
		createGetUserCountTool(),
		createGetUserInfoTool(),
		createGetCurrentUserTool(),
		createGetOrganizationInfoTool(),
		createGetInvoicesTool(),
		createGetInvoiceCountTool(),
		createGetInvoiceInfoTool(),
		createGetPaymentsTool(),
		createGetTagsTool(),
		createGetTagCategoriesTool(),
		createGetWorkflowStatusesTool(),
	}
}

func TestToolCatalogComplete(t *testing.T) {
	tools := allTools()
	if len(tools) != 42 {
		t.Fatalf("Expected 42 tools, got %d", len(tools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("Tool with empty name")
		}
		if seen[tool.Name] {
			t.Errorf("Duplicate tool name: %s", tool.Name)
		}
		seen[tool.Name] = true
		if tool.Description == "" {
			t.Errorf("Tool %s has no description", tool.Name)
		}
	}
}

func TestToolRequiredParameters(t *testing.T) {
	required := map[string][]string{
		"get_contact":             {"contact_id"},
		"create_contact":          {"first_name", "last_name"},
		"update_contact":          {"contact_id"},
		"get_candidate":           {"candidate_id"},
		"create_candidate":        {"first_name", "last_name"},
		"get_job":                 {"job_id"},
		"create_job":              {"name"},
		"get_job_contacts":        {"job_id"},
		"get_job_contact_history": {"job_id"},
		"get_company":             {"company_id"},
		"create_company":          {"name"},
		"create_note":             {"body"},
		"create_task":             {"body"},
		"get_placement_info":      {"placement_id"},
		"get_user_info":           {"user_id"},
		"get_invoice_info":        {"invoice_id"},
	}

	byName := make(map[string]mcp.Tool)
	for _, tool := range allTools() {
		byName[tool.Name] = tool
	}

	for name, want := range required {
		tool, ok := byName[name]
		if !ok {
			t.Errorf("Tool %s not found in catalog", name)
			continue
		}
		got := make(map[string]bool)
		for _, r := range tool.InputSchema.Required {
			got[r] = true
		}
		for _, param := range want {
			if !got[param] {
				t.Errorf("Tool %s should require %s, schema requires %v", name, param, tool.InputSchema.Required)
			}
		}
		if len(tool.InputSchema.Required) != len(want) {
			t.Errorf("Tool %s requires %v, expected exactly %v", name, tool.InputSchema.Required, want)
		}
	}
}

func TestReadOnlyToolsHaveNoRequiredParameters(t *testing.T) {
	noRequired := []string{
		"list_contacts", "list_candidates", "list_jobs", "list_companies",
		"get_activities", "get_applications", "get_placements",
		"get_users", "get_user_count", "get_current_user", "get_organization_info",
		"get_invoices", "get_payments", "get_tags", "get_tag_categories",
		"get_workflow_statuses",
	}

	byName := make(map[string]mcp.Tool)
	for _, tool := range allTools() {
		byName[tool.Name] = tool
	}

	for _, name := range noRequired {
		tool, ok := byName[name]
		if !ok {
			t.Errorf("Tool %s not found in catalog", name)
			continue
		}
		if len(tool.InputSchema.Required) != 0 {
			t.Errorf("Tool %s should have no required parameters, got %v", name, tool.InputSchema.Required)
		}
	}
}
