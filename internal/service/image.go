package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/replate-app/backend/config"
	"github.com/replate-app/backend/internal/models"
)

// imageGenerationRequest is the request body for the DALL-E API.
type imageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

// imageGenerationResponse is the response from the DALL-E API.
type imageGenerationResponse struct {
	Data []struct {
		URL string `json:"url,omitempty"`
	} `json:"data"`
}

// ImageService generates photos for suggested recipes and stores them
// in S3. Entirely optional: without it recipes keep whatever photo
// URL they came with.
type ImageService struct {
	apiKey string
	apiURL string
	s3     *config.S3Config
	client *http.Client
}

// NewImageService creates an image service. s3Config may be nil, in
// which case the generated image URL is returned directly instead of
// being re-hosted.
func NewImageService(apiKey, apiURL string, s3Config *config.S3Config) *ImageService {
	return &ImageService{
		apiKey: apiKey,
		apiURL: apiURL,
		s3:     s3Config,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateRecipePhoto generates a food photograph for the recipe and
// returns its URL.
func (s *ImageService) GenerateRecipePhoto(ctx context.Context, r models.Recipe) (string, error) {
	reqBody := imageGenerationRequest{
		Model:          "dall-e-3",
		Prompt:         buildPhotoPrompt(r),
		N:              1,
		Size:           "1024x1024",
		Quality:        "standard",
		ResponseFormat: "url",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result imageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", fmt.Errorf("no image URL in API response")
	}

	imageURL := result.Data[0].URL
	if s.s3 == nil {
		return imageURL, nil
	}

	s3URL, err := s.rehostImage(ctx, imageURL)
	if err != nil {
		log.Printf("[ImageService] failed to rehost image, returning original URL: %v", err)
		return imageURL, nil
	}
	return s3URL, nil
}

// rehostImage downloads the generated image and uploads it to S3,
// since DALL-E URLs expire.
func (s *ImageService) rehostImage(ctx context.Context, imageURL string) (string, error) {
	resp, err := s.client.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	fileName := fmt.Sprintf("recipe-photos/%s.png", uuid.New().String())
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3.BucketName, fileName), nil
}

// buildPhotoPrompt renders a food-photography prompt for the recipe.
func buildPhotoPrompt(r models.Recipe) string {
	prompt := "A professional food photography shot of " + strings.ToLower(r.Title) +
		", shot with natural lighting, shallow depth of field, garnished beautifully, restaurant quality presentation"
	if len(prompt) > 900 {
		prompt = prompt[:900]
	}
	return prompt
}
