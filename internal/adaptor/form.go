package adaptor

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"wastecare-sesnet/internal/dto/request"
)

// Request bodies are form-encoded; registration and profile updates come
// in as multipart because of the flyer upload.
const maxUploadSize = 10 << 20 // 10 MB

func parseForm(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadSize)
	}
	return r.ParseForm()
}

// formValues reports the raw values AND whether the field was present at
// all, so an explicit empty or zero value is not mistaken for "absent".
func formValues(r *http.Request, name string) ([]string, bool) {
	if r.MultipartForm != nil {
		if vs, ok := r.MultipartForm.Value[name]; ok {
			return vs, true
		}
	}
	if vs, ok := r.PostForm[name]; ok {
		return vs, true
	}
	return nil, false
}

func formStringPtr(r *http.Request, name string) *string {
	vs, ok := formValues(r, name)
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

func formFloatPtr(r *http.Request, name string) (*float64, error) {
	vs, ok := formValues(r, name)
	if !ok || len(vs) == 0 {
		return nil, nil
	}
	f, err := strconv.ParseFloat(vs[0], 64)
	if err != nil {
		return nil, errors.New("must be a number")
	}
	return &f, nil
}

// formFile reads an uploaded file fully into memory; absent file is not
// an error.
func formFile(r *http.Request, name string) ([]byte, string, error) {
	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}

// parseProfileForm extracts the role-specific fields, reporting per-field
// parse problems.
func parseProfileForm(r *http.Request) (request.ProfileForm, map[string]string) {
	problems := make(map[string]string)
	var form request.ProfileForm

	var err error
	form.Flyer, form.FlyerType, err = formFile(r, "flyer")
	if err != nil {
		problems["flyer"] = "Invalid file upload"
	}

	form.DigitalAddress = formStringPtr(r, "digital_address")
	form.Description = formStringPtr(r, "description")
	form.CompanyName = formStringPtr(r, "company_name")
	form.Lead = formStringPtr(r, "lead")
	form.ShopName = formStringPtr(r, "shop_name")
	form.Owner = formStringPtr(r, "owner")

	if form.Latitude, err = formFloatPtr(r, "latitude"); err != nil {
		problems["latitude"] = err.Error()
	}
	if form.Longitude, err = formFloatPtr(r, "longitude"); err != nil {
		problems["longitude"] = err.Error()
	}

	if len(problems) == 0 {
		return form, nil
	}
	return form, problems
}
