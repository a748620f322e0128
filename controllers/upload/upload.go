package uploadControllers

import (
	"net/http"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// POST /uploads
// Pushes a multipart image to the asset host and answers with its public URL.
// Nothing but the URL is ever stored server-side.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		cloudURL := os.Getenv("CLOUDINARY_URL")
		if cloudURL == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload service is not configured"})
			return
		}

		cld, err := cloudinary.NewFromURL(cloudURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload service init failed: " + err.Error()})
			return
		}

		result, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": result.SecureURL})
	}
}
