package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/crelate-mcp/internal/crelate"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult re-serializes the dispatcher's parsed result as canonical JSON
// text so callers always receive round-trippable output.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error serializing response: %v", err))
	}
	return textResult(string(data))
}

func getString(request mcp.CallToolRequest, key, defaultVal string) string {
	return request.GetString(key, defaultVal)
}

func getInt(request mcp.CallToolRequest, key string, defaultVal int) int {
	return request.GetInt(key, defaultVal)
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	return request.RequireString(key)
}

// pagination reads the shared limit/offset arguments with their defaults.
func pagination(request mcp.CallToolRequest) (limit, offset int) {
	return getInt(request, "limit", 50), getInt(request, "offset", 0)
}

// --- Contact handlers ---

func handleListContacts(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "search", Value: getString(request, "search", "")},
		)

		result, err := c.Get(ctx, "contacts", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing contacts: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetContact(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "contacts/"+url.PathEscape(contactID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting contact: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleCreateContact(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		firstName, err := requireString(request, "first_name")
		if err != nil || firstName == "" {
			return errorResult("Error: first_name parameter is required"), nil
		}
		lastName, err := requireString(request, "last_name")
		if err != nil || lastName == "" {
			return errorResult("Error: last_name parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"firstName": firstName, "lastName": lastName},
			crelate.Field{Name: "email", Value: getString(request, "email", "")},
			crelate.Field{Name: "phone", Value: getString(request, "phone", "")},
			crelate.Field{Name: "companyName", Value: getString(request, "company_name", "")},
			crelate.Field{Name: "title", Value: getString(request, "title", "")},
		)

		result, err := c.Post(ctx, "contacts", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating contact: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleUpdateContact(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		// All fields optional; an empty body is a legal no-op update.
		body := crelate.NewBody(crelate.Body{},
			crelate.Field{Name: "firstName", Value: getString(request, "first_name", "")},
			crelate.Field{Name: "lastName", Value: getString(request, "last_name", "")},
			crelate.Field{Name: "email", Value: getString(request, "email", "")},
			crelate.Field{Name: "phone", Value: getString(request, "phone", "")},
			crelate.Field{Name: "title", Value: getString(request, "title", "")},
		)

		result, err := c.Put(ctx, "contacts/"+url.PathEscape(contactID), body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error updating contact: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetContactCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "search", Value: getString(request, "search", "")},
		)

		result, err := c.Get(ctx, "contacts/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting contacts: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetContactHistory(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "contactId", Value: getString(request, "contact_id", "")},
		)

		result, err := c.Get(ctx, "contacts/history", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting contact history: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetContactSources(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "contactsources", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting contact sources: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Candidate handlers ---

func handleListCandidates(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "search", Value: getString(request, "search", "")},
		)

		result, err := c.Get(ctx, "candidates", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing candidates: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetCandidate(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		candidateID, err := requireString(request, "candidate_id")
		if err != nil || candidateID == "" {
			return errorResult("Error: candidate_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "candidates/"+url.PathEscape(candidateID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting candidate: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleCreateCandidate(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		firstName, err := requireString(request, "first_name")
		if err != nil || firstName == "" {
			return errorResult("Error: first_name parameter is required"), nil
		}
		lastName, err := requireString(request, "last_name")
		if err != nil || lastName == "" {
			return errorResult("Error: last_name parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"firstName": firstName, "lastName": lastName},
			crelate.Field{Name: "email", Value: getString(request, "email", "")},
			crelate.Field{Name: "phone", Value: getString(request, "phone", "")},
			crelate.Field{Name: "currentTitle", Value: getString(request, "current_title", "")},
			crelate.Field{Name: "currentCompany", Value: getString(request, "current_company", "")},
		)

		result, err := c.Post(ctx, "candidates", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating candidate: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Job handlers ---

func handleListJobs(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "jobs", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing jobs: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetJob(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jobID, err := requireString(request, "job_id")
		if err != nil || jobID == "" {
			return errorResult("Error: job_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "jobs/"+url.PathEscape(jobID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting job: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleCreateJob(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := requireString(request, "name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"name": name},
			crelate.Field{Name: "companyName", Value: getString(request, "company_name", "")},
			crelate.Field{Name: "location", Value: getString(request, "location", "")},
			crelate.Field{Name: "description", Value: getString(request, "description", "")},
		)

		result, err := c.Post(ctx, "jobs", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating job: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetJobCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "jobs/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting jobs: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetJobHistory(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
		)

		result, err := c.Get(ctx, "jobs/history", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting job history: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetJobContacts(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jobID, err := requireString(request, "job_id")
		if err != nil || jobID == "" {
			return errorResult("Error: job_id parameter is required"), nil
		}

		limit, offset := pagination(request)
		endpoint := fmt.Sprintf("jobs/%s/contacts", url.PathEscape(jobID))

		result, err := c.Get(ctx, endpoint, crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting job contacts: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetJobContactHistory(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jobID, err := requireString(request, "job_id")
		if err != nil || jobID == "" {
			return errorResult("Error: job_id parameter is required"), nil
		}

		limit, offset := pagination(request)
		endpoint := fmt.Sprintf("jobs/%s/contacts/history", url.PathEscape(jobID))

		result, err := c.Get(ctx, endpoint, crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting job contact history: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Company handlers ---

func handleListCompanies(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "search", Value: getString(request, "search", "")},
		)

		result, err := c.Get(ctx, "companies", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing companies: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetCompany(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := requireString(request, "company_id")
		if err != nil || companyID == "" {
			return errorResult("Error: company_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "companies/"+url.PathEscape(companyID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting company: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleCreateCompany(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := requireString(request, "name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"name": name},
			crelate.Field{Name: "website", Value: getString(request, "website", "")},
			crelate.Field{Name: "industry", Value: getString(request, "industry", "")},
			crelate.Field{Name: "location", Value: getString(request, "location", "")},
		)

		result, err := c.Post(ctx, "companies", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating company: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetCompanyCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "search", Value: getString(request, "search", "")},
		)

		result, err := c.Get(ctx, "companies/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting companies: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetCompanySources(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "companysources", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting company sources: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Note and task handlers ---

func handleCreateNote(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteBody, err := requireString(request, "body")
		if err != nil || noteBody == "" {
			return errorResult("Error: body parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"body": noteBody},
			crelate.Field{Name: "contactId", Value: getString(request, "contact_id", "")},
			crelate.Field{Name: "candidateId", Value: getString(request, "candidate_id", "")},
			crelate.Field{Name: "companyId", Value: getString(request, "company_id", "")},
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
		)

		result, err := c.Post(ctx, "notes", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating note: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleCreateTask(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskBody, err := requireString(request, "body")
		if err != nil || taskBody == "" {
			return errorResult("Error: body parameter is required"), nil
		}

		body := crelate.NewBody(
			crelate.Body{"body": taskBody},
			crelate.Field{Name: "dueDate", Value: getString(request, "due_date", "")},
			crelate.Field{Name: "contactId", Value: getString(request, "contact_id", "")},
			crelate.Field{Name: "candidateId", Value: getString(request, "candidate_id", "")},
			crelate.Field{Name: "companyId", Value: getString(request, "company_id", "")},
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
		)

		result, err := c.Post(ctx, "tasks", body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error creating task: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Activity handlers ---

func handleGetActivities(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "contactId", Value: getString(request, "contact_id", "")},
			crelate.Field{Name: "candidateId", Value: getString(request, "candidate_id", "")},
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
			crelate.Field{Name: "companyId", Value: getString(request, "company_id", "")},
		)

		result, err := c.Get(ctx, "activities", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting activities: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetActivityCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "contactId", Value: getString(request, "contact_id", "")},
			crelate.Field{Name: "candidateId", Value: getString(request, "candidate_id", "")},
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
		)

		result, err := c.Get(ctx, "activities/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting activities: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Application handlers ---

func handleGetApplications(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
			crelate.Field{Name: "candidateId", Value: getString(request, "candidate_id", "")},
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "applications", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting applications: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetApplicationCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "jobId", Value: getString(request, "job_id", "")},
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "applications/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting applications: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Placement handlers ---

func handleGetPlacements(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "placements", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting placements: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetPlacementInfo(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		placementID, err := requireString(request, "placement_id")
		if err != nil || placementID == "" {
			return errorResult("Error: placement_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "placements/"+url.PathEscape(placementID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting placement: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- User and organization handlers ---

func handleGetUsers(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "users", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting users: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetUserCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := c.Get(ctx, "users/count", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting users: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetUserInfo(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID, err := requireString(request, "user_id")
		if err != nil || userID == "" {
			return errorResult("Error: user_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "users/"+url.PathEscape(userID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting user: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetCurrentUser(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := c.Get(ctx, "users/self", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting current user: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetOrganizationInfo(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := c.Get(ctx, "organizations/self", nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting organization: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Financial handlers ---

func handleGetInvoices(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "invoices", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting invoices: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetInvoiceCount(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := crelate.FilterParams(
			crelate.Field{Name: "status", Value: getString(request, "status", "")},
		)

		result, err := c.Get(ctx, "invoices/count", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error counting invoices: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetInvoiceInfo(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		invoiceID, err := requireString(request, "invoice_id")
		if err != nil || invoiceID == "" {
			return errorResult("Error: invoice_id parameter is required"), nil
		}

		result, err := c.Get(ctx, "invoices/"+url.PathEscape(invoiceID), nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting invoice: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetPayments(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "payments", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting payments: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

// --- Tag and workflow handlers ---

func handleGetTags(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)
		params := crelate.ListParams(limit, offset,
			crelate.Field{Name: "category", Value: getString(request, "category", "")},
		)

		result, err := c.Get(ctx, "tags", params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting tags: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetTagCategories(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "tagcategories", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting tag categories: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}

func handleGetWorkflowStatuses(c *crelate.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, offset := pagination(request)

		result, err := c.Get(ctx, "workflowstatuses", crelate.ListParams(limit, offset))
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting workflow statuses: %v", err)), nil
		}
		return jsonResult(result), nil
	}
}
