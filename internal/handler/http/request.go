package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/pinvent/models"
)

const (
	imageFormField = "image"

	// formOverhead is allowed on top of the image limit for the other parts
	// and multipart framing.
	formOverhead = 1 << 20

	maxJSONBodySize = 1 << 20
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart reads a multipart body bounded by the upload limit and
// returns the optional image part.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) (*models.ImageFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(h.settings.MaxUploadSize + formOverhead); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return &models.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}

// productFieldsFromRequest accepts a JSON body or a multipart form whose
// text parts carry the same names as the JSON fields.
func (h *Handler) productFieldsFromRequest(w http.ResponseWriter, r *http.Request) (models.ProductFields, error) {
	var fields models.ProductFields

	if !isMultipart(r) {
		err := decodeJSON(w, r, &fields)
		return fields, err
	}

	image, err := h.parseMultipart(w, r)
	if err != nil {
		return fields, err
	}
	fields.Image = image

	fields.Name = formString(r, "name")
	fields.SKU = formString(r, "sku")
	fields.Category = formString(r, "category")
	fields.Description = formString(r, "description")

	if v := formString(r, "quantity"); v != nil {
		quantity, err := strconv.ParseInt(strings.TrimSpace(*v), 10, 64)
		if err != nil {
			return fields, fmt.Errorf("%w: quantity: %w", ErrInvalidForm, err)
		}
		fields.Quantity = &quantity
	}
	if v := formString(r, "price"); v != nil {
		price, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
		if err != nil {
			return fields, fmt.Errorf("%w: price: %w", ErrInvalidForm, err)
		}
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return fields, fmt.Errorf("%w: price %q is not finite", ErrInvalidForm, *v)
		}
		fields.Price = &price
	}

	return fields, nil
}

func (h *Handler) updateUserFromRequest(w http.ResponseWriter, r *http.Request) (models.UpdateUserRequest, error) {
	var req models.UpdateUserRequest

	if !isMultipart(r) {
		err := decodeJSON(w, r, &req)
		return req, err
	}

	image, err := h.parseMultipart(w, r)
	if err != nil {
		return req, err
	}

	req.Image = image
	req.Username = r.FormValue("username")
	req.Phone = r.FormValue("phone")
	req.Bio = r.FormValue("bio")
	req.Photo = r.FormValue("photo")

	return req, nil
}

// formString returns nil for an absent or empty part so that it reads as
// "not provided".
func formString(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 || values[0] == "" {
		return nil
	}
	return &values[0]
}
