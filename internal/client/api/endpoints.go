package api

import (
	"context"
	"net/http"

	"github.com/inventorypro/cli/internal/client/models"
)

// Typed wrappers around Call, one per backend endpoint. The backend speaks
// POST for everything that mutates or requires a session; list endpoints
// take no body.

// --- auth ---

type userResponse struct {
	Envelope
	User *models.User `json:"user"`
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	var resp userResponse
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.Call(ctx, "auth/signup", http.MethodPost, body, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp userResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Call(ctx, "auth/login", http.MethodPost, body, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	var resp Envelope
	if err := c.Call(ctx, "auth/logout", http.MethodPost, nil, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// ForgotPassword asks the backend to mail a verification code. The returned
// string is the server message shown to the user.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp Envelope
	if err := c.Call(ctx, "auth/forgot-password", http.MethodPost, map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, resp.Err()
}

func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	var resp Envelope
	body := map[string]string{"email": email, "code": code}
	if err := c.Call(ctx, "auth/verify-code", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) ResetPassword(ctx context.Context, email, code, password string) error {
	var resp Envelope
	body := map[string]string{"email": email, "code": code, "password": password}
	if err := c.Call(ctx, "auth/reset-password", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// --- products ---

// ProductInput carries the user-editable product fields.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type productsResponse struct {
	Envelope
	Data []models.Product `json:"data"`
}

func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := c.Call(ctx, "products/get", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, resp.Err()
}

func (c *Client) AddProduct(ctx context.Context, p ProductInput) error {
	var resp Envelope
	if err := c.Call(ctx, "products/add", http.MethodPost, p, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, p ProductInput) error {
	var resp Envelope
	body := struct {
		ID int64 `json:"id"`
		ProductInput
	}{ID: id, ProductInput: p}
	if err := c.Call(ctx, "products/update", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	var resp Envelope
	if err := c.Call(ctx, "products/delete", http.MethodPost, map[string]int64{"id": id}, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// --- stock ---

type stockResponse struct {
	Envelope
	Data []models.StockEntry `json:"data"`
}

func (c *Client) GetStock(ctx context.Context) ([]models.StockEntry, error) {
	var resp stockResponse
	if err := c.Call(ctx, "stock/get", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, resp.Err()
}

func (c *Client) AddStock(ctx context.Context, productID, quantity int64, notes string) error {
	var resp Envelope
	body := map[string]any{"product_id": productID, "quantity": quantity, "notes": notes}
	if err := c.Call(ctx, "stock/add", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) UpdateStock(ctx context.Context, id, quantity int64, notes string) error {
	var resp Envelope
	body := map[string]any{"id": id, "quantity": quantity, "notes": notes}
	if err := c.Call(ctx, "stock/update", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) DeleteStock(ctx context.Context, id int64) error {
	var resp Envelope
	if err := c.Call(ctx, "stock/delete", http.MethodPost, map[string]int64{"id": id}, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// --- sales ---

type salesResponse struct {
	Envelope
	Data []models.SaleEntry `json:"data"`
}

func (c *Client) GetSales(ctx context.Context) ([]models.SaleEntry, error) {
	var resp salesResponse
	if err := c.Call(ctx, "sales/get", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, resp.Err()
}

func (c *Client) AddSale(ctx context.Context, productID, quantity int64, price float64, notes string) error {
	var resp Envelope
	body := map[string]any{"product_id": productID, "quantity": quantity, "price": price, "notes": notes}
	if err := c.Call(ctx, "sales/add", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) DeleteSale(ctx context.Context, id int64) error {
	var resp Envelope
	if err := c.Call(ctx, "sales/delete", http.MethodPost, map[string]int64{"id": id}, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// --- user / profile ---

func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.Call(ctx, "user/get", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id int64, username, email string) (*models.User, error) {
	var resp userResponse
	body := map[string]any{"id": id, "username": username, "email": email}
	if err := c.Call(ctx, "user/update", http.MethodPost, body, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	var resp Envelope
	body := map[string]any{"id": id, "old_password": oldPassword, "new_password": newPassword}
	if err := c.Call(ctx, "user/change-password", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// DeleteAccount removes the calling user's own account; the backend requires
// the current password as confirmation.
func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	var resp Envelope
	if err := c.Call(ctx, "user/delete", http.MethodPost, map[string]string{"password": password}, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) DeleteUserByAdmin(ctx context.Context, id int64) error {
	var resp Envelope
	if err := c.Call(ctx, "user/delete-by-admin", http.MethodPost, map[string]int64{"id": id}, &resp); err != nil {
		return err
	}
	return resp.Err()
}

type usersResponse struct {
	Envelope
	Data []models.UserListItem `json:"data"`
}

func (c *Client) GetAllUsers(ctx context.Context) ([]models.UserListItem, error) {
	var resp usersResponse
	if err := c.Call(ctx, "user/get-all", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, resp.Err()
}

// --- notifications ---

type notificationsResponse struct {
	Envelope
	Data []models.Notification `json:"data"`
}

func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var resp notificationsResponse
	if err := c.Call(ctx, "notifications/get", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, resp.Err()
}

func (c *Client) AddNotification(ctx context.Context, message, targetComponent string) error {
	var resp Envelope
	body := map[string]string{"message": message, "targetComponent": targetComponent}
	if err := c.Call(ctx, "notifications/add", http.MethodPost, body, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) DeleteNotifications(ctx context.Context) error {
	var resp Envelope
	if err := c.Call(ctx, "notifications/delete", http.MethodPost, nil, &resp); err != nil {
		return err
	}
	return resp.Err()
}

func (c *Client) MarkNotificationsSeen(ctx context.Context) error {
	var resp Envelope
	if err := c.Call(ctx, "notifications/mark-seen", http.MethodPost, nil, &resp); err != nil {
		return err
	}
	return resp.Err()
}

// --- dashboard ---

type statsResponse struct {
	Envelope
	Data models.DashboardStats `json:"data"`
}

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var resp statsResponse
	if err := c.Call(ctx, "dashboard/stats", http.MethodPost, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
