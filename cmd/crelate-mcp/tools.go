package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/crelate-mcp/internal/crelate"
	"github.com/bobmcallan/crelate-mcp/internal/crelate/common"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that calls the Crelate API via the client.
func registerTools(s *server.MCPServer, c *crelate.Client, logger *common.Logger) {
	add := func(tool mcp.Tool, handler server.ToolHandlerFunc) {
		s.AddTool(tool, withToolLogging(logger, tool.Name, handler))
	}

	// Contacts
	add(createListContactsTool(), handleListContacts(c))
	add(createGetContactTool(), handleGetContact(c))
	add(createCreateContactTool(), handleCreateContact(c))
	add(createUpdateContactTool(), handleUpdateContact(c))
	add(createGetContactCountTool(), handleGetContactCount(c))
	add(createGetContactHistoryTool(), handleGetContactHistory(c))
	add(createGetContactSourcesTool(), handleGetContactSources(c))

	// Candidates
	add(createListCandidatesTool(), handleListCandidates(c))
	add(createGetCandidateTool(), handleGetCandidate(c))
	add(createCreateCandidateTool(), handleCreateCandidate(c))

	// Jobs
	add(createListJobsTool(), handleListJobs(c))
	add(createGetJobTool(), handleGetJob(c))
	add(createCreateJobTool(), handleCreateJob(c))
	add(createGetJobCountTool(), handleGetJobCount(c))
	add(createGetJobHistoryTool(), handleGetJobHistory(c))
	add(createGetJobContactsTool(), handleGetJobContacts(c))
	add(createGetJobContactHistoryTool(), handleGetJobContactHistory(c))

	// Companies
	add(createListCompaniesTool(), handleListCompanies(c))
	add(createGetCompanyTool(), handleGetCompany(c))
	add(createCreateCompanyTool(), handleCreateCompany(c))
	add(createGetCompanyCountTool(), handleGetCompanyCount(c))
	add(createGetCompanySourcesTool(), handleGetCompanySources(c))

	// Notes and tasks
	add(createCreateNoteTool(), handleCreateNote(c))
	add(createCreateTaskTool(), handleCreateTask(c))

	// Activities
	add(createGetActivitiesTool(), handleGetActivities(c))
	add(createGetActivityCountTool(), handleGetActivityCount(c))

	// Applications
	add(createGetApplicationsTool(), handleGetApplications(c))
	add(createGetApplicationCountTool(), handleGetApplicationCount(c))

	// Placements
	add(createGetPlacementsTool(), handleGetPlacements(c))
	add(createGetPlacementInfoTool(), handleGetPlacementInfo(c))

	// Users and organization
	add(createGetUsersTool(), handleGetUsers(c))
	add(createGetUserCountTool(), handleGetUserCount(c))
	add(createGetUserInfoTool(), handleGetUserInfo(c))
	add(createGetCurrentUserTool(), handleGetCurrentUser(c))
	add(createGetOrganizationInfoTool(), handleGetOrganizationInfo(c))

	// Financial
	add(createGetInvoicesTool(), handleGetInvoices(c))
	add(createGetInvoiceCountTool(), handleGetInvoiceCount(c))
	add(createGetInvoiceInfoTool(), handleGetInvoiceInfo(c))
	add(createGetPaymentsTool(), handleGetPayments(c))

	// Tags and workflow
	add(createGetTagsTool(), handleGetTags(c))
	add(createGetTagCategoriesTool(), handleGetTagCategories(c))
	add(createGetWorkflowStatusesTool(), handleGetWorkflowStatuses(c))
}

// withToolLogging wraps a handler with a per-invocation correlation ID so a
// tool call can be traced through the dispatch layer.
func withToolLogging(logger *common.Logger, name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())
		log.Debug().Str("tool", name).Msg("Tool invocation")

		result, err := handler(ctx, request)

		if err != nil {
			log.Error().Err(err).Str("tool", name).Msg("Tool invocation failed")
		} else if result != nil && result.IsError {
			log.Warn().Str("tool", name).Msg("Tool returned error result")
		}
		return result, err
	}
}

// --- Contact tools ---

func createListContactsTool() mcp.Tool {
	return mcp.NewTool("list_contacts",
		mcp.WithDescription("List contacts from Crelate. Returns contact records with id, name, email, and phone."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of contacts to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of contacts to skip for pagination (default: 0)")),
		mcp.WithString("search", mcp.Description("Optional search query to filter contacts")),
	)
}

func createGetContactTool() mcp.Tool {
	return mcp.NewTool("get_contact",
		mcp.WithDescription("Get detailed information about a specific contact."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The unique ID of the contact")),
	)
}

func createCreateContactTool() mcp.Tool {
	return mcp.NewTool("create_contact",
		mcp.WithDescription("Create a new contact in Crelate. Returns the created contact including its ID."),
		mcp.WithString("first_name", mcp.Required(), mcp.Description("Contact's first name")),
		mcp.WithString("last_name", mcp.Required(), mcp.Description("Contact's last name")),
		mcp.WithString("email", mcp.Description("Contact's email address")),
		mcp.WithString("phone", mcp.Description("Contact's phone number")),
		mcp.WithString("company_name", mcp.Description("Associated company name")),
		mcp.WithString("title", mcp.Description("Contact's job title")),
	)
}

func createUpdateContactTool() mcp.Tool {
	return mcp.NewTool("update_contact",
		mcp.WithDescription("Update an existing contact in Crelate. Only supplied fields are changed."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The unique ID of the contact to update")),
		mcp.WithString("first_name", mcp.Description("Contact's first name")),
		mcp.WithString("last_name", mcp.Description("Contact's last name")),
		mcp.WithString("email", mcp.Description("Contact's email address")),
		mcp.WithString("phone", mcp.Description("Contact's phone number")),
		mcp.WithString("title", mcp.Description("Contact's job title")),
	)
}

func createGetContactCountTool() mcp.Tool {
	return mcp.NewTool("get_contact_count",
		mcp.WithDescription("Get total count of contacts with optional search filter."),
		mcp.WithString("search", mcp.Description("Optional search query to filter contacts")),
	)
}

func createGetContactHistoryTool() mcp.Tool {
	return mcp.NewTool("get_contact_history",
		mcp.WithDescription("Get interaction history for contacts."),
		mcp.WithString("contact_id", mcp.Description("Specific contact ID to filter by")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of history items to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of items to skip for pagination (default: 0)")),
	)
}

func createGetContactSourcesTool() mcp.Tool {
	return mcp.NewTool("get_contact_sources",
		mcp.WithDescription("Get all contact sources for tracking where contacts came from."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of sources to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of sources to skip for pagination (default: 0)")),
	)
}

// --- Candidate tools ---

func createListCandidatesTool() mcp.Tool {
	return mcp.NewTool("list_candidates",
		mcp.WithDescription("List candidates from Crelate."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of candidates to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of candidates to skip for pagination (default: 0)")),
		mcp.WithString("search", mcp.Description("Optional search query to filter candidates")),
	)
}

func createGetCandidateTool() mcp.Tool {
	return mcp.NewTool("get_candidate",
		mcp.WithDescription("Get detailed information about a specific candidate, including skills and experience."),
		mcp.WithString("candidate_id", mcp.Required(), mcp.Description("The unique ID of the candidate")),
	)
}

func createCreateCandidateTool() mcp.Tool {
	return mcp.NewTool("create_candidate",
		mcp.WithDescription("Create a new candidate in Crelate. Returns the created candidate including its ID."),
		mcp.WithString("first_name", mcp.Required(), mcp.Description("Candidate's first name")),
		mcp.WithString("last_name", mcp.Required(), mcp.Description("Candidate's last name")),
		mcp.WithString("email", mcp.Description("Candidate's email address")),
		mcp.WithString("phone", mcp.Description("Candidate's phone number")),
		mcp.WithString("current_title", mcp.Description("Candidate's current job title")),
		mcp.WithString("current_company", mcp.Description("Candidate's current company")),
	)
}

// --- Job tools ---

func createListJobsTool() mcp.Tool {
	return mcp.NewTool("list_jobs",
		mcp.WithDescription("List jobs/positions from Crelate with id, name, status, and location."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of jobs to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of jobs to skip for pagination (default: 0)")),
		mcp.WithString("status", mcp.Description("Optional filter by job status (e.g., 'open', 'closed')")),
	)
}

func createGetJobTool() mcp.Tool {
	return mcp.NewTool("get_job",
		mcp.WithDescription("Get detailed information about a specific job/position, including description and requirements."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The unique ID of the job")),
	)
}

func createCreateJobTool() mcp.Tool {
	return mcp.NewTool("create_job",
		mcp.WithDescription("Create a new job/position in Crelate. Returns the created job including its ID."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Job title/name")),
		mcp.WithString("company_name", mcp.Description("Hiring company name")),
		mcp.WithString("location", mcp.Description("Job location")),
		mcp.WithString("description", mcp.Description("Job description")),
	)
}

func createGetJobCountTool() mcp.Tool {
	return mcp.NewTool("get_job_count",
		mcp.WithDescription("Get total count of jobs with optional status filter."),
		mcp.WithString("status", mcp.Description("Filter by job status (e.g., 'open', 'closed')")),
	)
}

func createGetJobHistoryTool() mcp.Tool {
	return mcp.NewTool("get_job_history",
		mcp.WithDescription("Get history for jobs/positions."),
		mcp.WithString("job_id", mcp.Description("Specific job ID to filter by")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of history items to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of items to skip for pagination (default: 0)")),
	)
}

func createGetJobContactsTool() mcp.Tool {
	return mcp.NewTool("get_job_contacts",
		mcp.WithDescription("Get all contacts/candidates associated with a job."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job ID")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of contacts to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of contacts to skip for pagination (default: 0)")),
	)
}

func createGetJobContactHistoryTool() mcp.Tool {
	return mcp.NewTool("get_job_contact_history",
		mcp.WithDescription("Get interaction history for contacts on a specific job."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job ID")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of history items to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of items to skip for pagination (default: 0)")),
	)
}

// --- Company tools ---

func createListCompaniesTool() mcp.Tool {
	return mcp.NewTool("list_companies",
		mcp.WithDescription("List companies from Crelate."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of companies to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of companies to skip for pagination (default: 0)")),
		mcp.WithString("search", mcp.Description("Optional search query to filter companies")),
	)
}

func createGetCompanyTool() mcp.Tool {
	return mcp.NewTool("get_company",
		mcp.WithDescription("Get detailed information about a specific company."),
		mcp.WithString("company_id", mcp.Required(), mcp.Description("The unique ID of the company")),
	)
}

func createCreateCompanyTool() mcp.Tool {
	return mcp.NewTool("create_company",
		mcp.WithDescription("Create a new company in Crelate. Returns the created company including its ID."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Company name")),
		mcp.WithString("website", mcp.Description("Company website URL")),
		mcp.WithString("industry", mcp.Description("Company industry")),
		mcp.WithString("location", mcp.Description("Company location")),
	)
}

func createGetCompanyCountTool() mcp.Tool {
	return mcp.NewTool("get_company_count",
		mcp.WithDescription("Get total count of companies with optional search filter."),
		mcp.WithString("search", mcp.Description("Optional search query to filter companies")),
	)
}

func createGetCompanySourcesTool() mcp.Tool {
	return mcp.NewTool("get_company_sources",
		mcp.WithDescription("Get all company sources for tracking where companies came from."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of sources to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of sources to skip for pagination (default: 0)")),
	)
}

// --- Note and task tools ---

func createCreateNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a note in Crelate and optionally attach it to a contact, candidate, company, or job."),
		mcp.WithString("body", mcp.Required(), mcp.Description("Note content")),
		mcp.WithString("contact_id", mcp.Description("Optional contact ID to attach note to")),
		mcp.WithString("candidate_id", mcp.Description("Optional candidate ID to attach note to")),
		mcp.WithString("company_id", mcp.Description("Optional company ID to attach note to")),
		mcp.WithString("job_id", mcp.Description("Optional job ID to attach note to")),
	)
}

func createCreateTaskTool() mcp.Tool {
	return mcp.NewTool("create_task",
		mcp.WithDescription("Create a task in Crelate and optionally attach it to a contact, candidate, company, or job."),
		mcp.WithString("body", mcp.Required(), mcp.Description("Task description")),
		mcp.WithString("due_date", mcp.Description("Optional due date in ISO 8601 format (e.g., '2026-01-20T15:00:00Z')")),
		mcp.WithString("contact_id", mcp.Description("Optional contact ID to attach task to")),
		mcp.WithString("candidate_id", mcp.Description("Optional candidate ID to attach task to")),
		mcp.WithString("company_id", mcp.Description("Optional company ID to attach task to")),
		mcp.WithString("job_id", mcp.Description("Optional job ID to attach task to")),
	)
}

// --- Activity tools ---

func createGetActivitiesTool() mcp.Tool {
	return mcp.NewTool("get_activities",
		mcp.WithDescription("Get activity/interaction history (calls, emails, notes) with optional filtering."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of activities to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of activities to skip for pagination (default: 0)")),
		mcp.WithString("contact_id", mcp.Description("Filter by contact ID")),
		mcp.WithString("candidate_id", mcp.Description("Filter by candidate ID")),
		mcp.WithString("job_id", mcp.Description("Filter by job ID")),
		mcp.WithString("company_id", mcp.Description("Filter by company ID")),
	)
}

func createGetActivityCountTool() mcp.Tool {
	return mcp.NewTool("get_activity_count",
		mcp.WithDescription("Get total count of activities with optional filtering."),
		mcp.WithString("contact_id", mcp.Description("Filter by contact ID")),
		mcp.WithString("candidate_id", mcp.Description("Filter by candidate ID")),
		mcp.WithString("job_id", mcp.Description("Filter by job ID")),
	)
}

// --- Application tools ---

func createGetApplicationsTool() mcp.Tool {
	return mcp.NewTool("get_applications",
		mcp.WithDescription("Get job applications (candidate pipeline data) with filtering options."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of applications to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of applications to skip for pagination (default: 0)")),
		mcp.WithString("job_id", mcp.Description("Filter by specific job ID")),
		mcp.WithString("candidate_id", mcp.Description("Filter by specific candidate ID")),
		mcp.WithString("status", mcp.Description("Filter by application status")),
	)
}

func createGetApplicationCountTool() mcp.Tool {
	return mcp.NewTool("get_application_count",
		mcp.WithDescription("Get count of applications with optional filtering."),
		mcp.WithString("job_id", mcp.Description("Filter by specific job ID")),
		mcp.WithString("status", mcp.Description("Filter by application status")),
	)
}

// --- Placement tools ---

func createGetPlacementsTool() mcp.Tool {
	return mcp.NewTool("get_placements",
		mcp.WithDescription("Get placement records (successful hires) including hire dates and salaries."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of placements to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of placements to skip for pagination (default: 0)")),
		mcp.WithString("status", mcp.Description("Filter by placement status")),
	)
}

func createGetPlacementInfoTool() mcp.Tool {
	return mcp.NewTool("get_placement_info",
		mcp.WithDescription("Get detailed information about a specific placement."),
		mcp.WithString("placement_id", mcp.Required(), mcp.Description("The placement ID")),
	)
}

// --- User and organization tools ---

func createGetUsersTool() mcp.Tool {
	return mcp.NewTool("get_users",
		mcp.WithDescription("Get all users in the organization for team activity analysis."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of users to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of users to skip for pagination (default: 0)")),
	)
}

func createGetUserCountTool() mcp.Tool {
	return mcp.NewTool("get_user_count",
		mcp.WithDescription("Get total count of users in the organization."),
	)
}

func createGetUserInfoTool() mcp.Tool {
	return mcp.NewTool("get_user_info",
		mcp.WithDescription("Get detailed information about a specific user."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("The user ID")),
	)
}

func createGetCurrentUserTool() mcp.Tool {
	return mcp.NewTool("get_current_user",
		mcp.WithDescription("Get information about the current authenticated user."),
	)
}

func createGetOrganizationInfoTool() mcp.Tool {
	return mcp.NewTool("get_organization_info",
		mcp.WithDescription("Get information about the current organization and its settings."),
	)
}

// --- Financial tools ---

func createGetInvoicesTool() mcp.Tool {
	return mcp.NewTool("get_invoices",
		mcp.WithDescription("Get invoice records for financial reporting."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of invoices to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of invoices to skip for pagination (default: 0)")),
		mcp.WithString("status", mcp.Description("Filter by invoice status")),
	)
}

func createGetInvoiceCountTool() mcp.Tool {
	return mcp.NewTool("get_invoice_count",
		mcp.WithDescription("Get count of invoices with optional status filter."),
		mcp.WithString("status", mcp.Description("Filter by invoice status")),
	)
}

func createGetInvoiceInfoTool() mcp.Tool {
	return mcp.NewTool("get_invoice_info",
		mcp.WithDescription("Get detailed information about a specific invoice."),
		mcp.WithString("invoice_id", mcp.Required(), mcp.Description("The invoice ID")),
	)
}

func createGetPaymentsTool() mcp.Tool {
	return mcp.NewTool("get_payments",
		mcp.WithDescription("Get payment records for financial tracking."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of payments to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of payments to skip for pagination (default: 0)")),
	)
}

// --- Tag and workflow tools ---

func createGetTagsTool() mcp.Tool {
	return mcp.NewTool("get_tags",
		mcp.WithDescription("Get tags for categorization and reporting."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of tags to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of tags to skip for pagination (default: 0)")),
		mcp.WithString("category", mcp.Description("Filter by tag category")),
	)
}

func createGetTagCategoriesTool() mcp.Tool {
	return mcp.NewTool("get_tag_categories",
		mcp.WithDescription("Get tag categories for organizational reporting."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of categories to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of categories to skip for pagination (default: 0)")),
	)
}

func createGetWorkflowStatusesTool() mcp.Tool {
	return mcp.NewTool("get_workflow_statuses",
		mcp.WithDescription("Get workflow statuses for pipeline stage analysis."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of statuses to return (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of statuses to skip for pagination (default: 0)")),
	)
}
