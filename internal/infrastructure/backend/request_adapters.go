package backend

import (
	"context"
	"net/http"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Fixed permission-denied messages shown on 403 for the request lifecycle
// operations, regardless of what the backend says.
const (
	cancelForbiddenMessage  = "You don't have permission to cancel this request"
	statusForbiddenMessage  = "You don't have permission to change this request's status"
	urgencyForbiddenMessage = "You don't have permission to change this request's urgency"
)

// CreateBloodRequest opens a new blood request. Not idempotent.
func (c *Client) CreateBloodRequest(ctx context.Context, token string, in domain.BloodRequestInput) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.reqBase+"/requests/create", token, in)
	return c.finish("create-request", "Request created successfully", "Error creating request", resp, err)
}

// UpdateBloodRequest replaces the editable details of an existing request.
func (c *Client) UpdateBloodRequest(ctx context.Context, token, requestID string, in domain.BloodRequestInput) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPost, c.reqBase+"/requests/updateDetails/"+requestID, token, in)
	return c.finish("update-request", "Request updated successfully", "Error updating request", resp, err)
}

// CancelBloodRequest cancels a pending request.
func (c *Client) CancelBloodRequest(ctx context.Context, token, requestID string) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	resp, err := c.send(ctx, http.MethodPatch, c.reqBase+"/requests/"+requestID+"/cancel", token, nil)
	res := c.finish("cancel-request", "Request cancelled successfully", "Error cancelling request", resp, err)
	return overrideForbidden(res, cancelForbiddenMessage)
}

// ChangeRequestStatus moves a request to the given lifecycle status.
func (c *Client) ChangeRequestStatus(ctx context.Context, token, requestID string, status domain.RequestStatus) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	url := c.reqBase + "/requests/" + requestID + "/status/" + string(status)
	resp, err := c.send(ctx, http.MethodPatch, url, token, nil)
	res := c.finish("status-change-request", "Status changed successfully", "Error changing request status", resp, err)
	return overrideForbidden(res, statusForbiddenMessage)
}

// ChangeRequestUrgency re-prioritizes a request.
func (c *Client) ChangeRequestUrgency(ctx context.Context, token, requestID string, urgency domain.Urgency) domain.ActionResult {
	if res, ok := requireToken(token); !ok {
		return res
	}
	url := c.reqBase + "/requests/" + requestID + "/urgency/" + string(urgency)
	resp, err := c.send(ctx, http.MethodPatch, url, token, nil)
	res := c.finish("urgency-change-request", "Urgency changed successfully", "Error changing request urgency", resp, err)
	return overrideForbidden(res, urgencyForbiddenMessage)
}

func overrideForbidden(res domain.ActionResult, message string) domain.ActionResult {
	if res.Status == http.StatusForbidden {
		res.Message = message
	}
	return res
}
