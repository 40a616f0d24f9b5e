package web

import (
	"context"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	galleryModel "impressions/internal/domains/gallery/model"
	galleryDto "impressions/internal/domains/gallery/model/dto"
	mediaModel "impressions/internal/domains/media/model"
	mediaSvc "impressions/internal/domains/media/service"
	"impressions/shared/constant"
	"impressions/shared/timezone"
	"impressions/shared/validator"
)

const adminGalleryPath = "/admin/gallery"

type AdminGalleryPage struct {
	Images     []galleryDto.GalleryImageResponse
	Categories []galleryModel.Category
	Form       galleryDto.SaveGalleryImageRequest
	Editing    bool
}

func (h *Handler) AdminGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".AdminGallery")
	defer scope.End()

	images, err := h.svc.Gallery.List(ctx)

	page := AdminGalleryPage{
		Images:     images,
		Categories: galleryModel.Categories(),
		Form:       galleryDto.SaveGalleryImageRequest{Category: galleryModel.CategoryFramed},
	}

	if edit := r.URL.Query().Get("edit"); edit != "" {
		for i := range images {
			if images[i].ID == edit {
				page.Form = images[i].ToRequest()
				page.Editing = true
			}
		}
	}

	data := h.page(w, r, adminSessionName, "Gallery", "gallery", page)
	if err != nil {
		scope.TraceError(err)

		data.Error = "Gallery images could not be loaded."
	}

	h.render(w, http.StatusOK, "admin_gallery", data)
}

// pendingImage is an image read from the form but not stored yet.
type pendingImage struct {
	data        []byte
	name        string
	contentType string
}

func (h *Handler) uploadLimit() int64 {
	return mediaModel.RequestLimit(h.config.External.S3.MaxUploadMB)
}

// readImage returns the optional image file of the form under its generated
// upload name, or nil when no file was sent.
func readImage(r *http.Request) (*pendingImage, error) {
	data, filename, contentType, err := formFile(r, constant.FormImage)
	if err != nil || data == nil {
		return nil, err
	}

	contentType = mediaSvc.DetectContentType(contentType, data)

	ext, ok := mediaModel.Extension(contentType)
	if !ok {
		ext = path.Ext(filename)
	}

	return &pendingImage{
		data:        data,
		name:        mediaSvc.UploadFilename(ext, timezone.Now()),
		contentType: contentType,
	}, nil
}

// storeImage uploads image and returns its URL. A nil image keeps current.
func (h *Handler) storeImage(ctx context.Context, image *pendingImage, current string) (string, error) {
	if image == nil {
		return current, nil
	}

	return h.svc.Media.Upload(ctx, image.data, image.name, image.contentType) //nolint:wrapcheck
}

// discardImage removes an upload whose record could not be saved.
func (h *Handler) discardImage(ctx context.Context, image *pendingImage, url string) {
	if image == nil {
		return
	}

	if err := h.svc.Media.Remove(ctx, url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to remove orphaned upload")
	}
}

// SaveGallery creates or updates an image. An uploaded file replaces the image
// URL and is only stored once the form is valid.
func (h *Handler) SaveGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".SaveGallery")
	defer scope.End()

	fail := func(err error) {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("save the image", err))
		h.redirect(w, r, adminGalleryPath)
	}

	if err := parseForm(w, r, h.uploadLimit()); err != nil {
		fail(err)

		return
	}

	order, err := formInt(r, "order")
	if err != nil {
		fail(err)

		return
	}

	req := galleryDto.SaveGalleryImageRequest{
		ID:        r.PostForm.Get("id"),
		Title:     r.PostForm.Get("title"),
		Category:  galleryModel.Category(r.PostForm.Get("category")),
		ImagePath: r.PostForm.Get("image_path"),
		Featured:  formBool(r, "featured"),
		Order:     order,
	}

	image, err := readImage(r)
	if err != nil {
		fail(err)

		return
	}

	if image != nil {
		req.ImagePath = image.name
	}

	if err = validator.ValidateStruct(&req); err != nil {
		fail(err)

		return
	}

	if req.ImagePath, err = h.storeImage(ctx, image, req.ImagePath); err != nil {
		log.Error().Err(err).Msg("failed to upload gallery image")
		fail(err)

		return
	}

	if _, err = h.svc.Gallery.Save(ctx, req); err != nil {
		h.discardImage(ctx, image, req.ImagePath)
		fail(err)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Image saved.")
	h.redirect(w, r, adminGalleryPath)
}

func (h *Handler) DeleteGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".DeleteGallery")
	defer scope.End()

	if err := h.svc.Gallery.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("delete the image", err))
		h.redirect(w, r, adminGalleryPath)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Image deleted.")
	h.redirect(w, r, adminGalleryPath)
}
