package helpers

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AvatarFolder  = "avatars"
	ProductFolder = "products"
	ReviewFolder  = "reviews"
	ProofFolder   = "payment-proofs"

	TokenTTL = time.Hour
)

// IssueToken signs a session token for the given account identity.
func IssueToken(userID, email, role, fullName, companyName string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	now := time.Now()
	claims := &SessionClaims{
		Role:        role,
		Email:       email,
		FullName:    fullName,
		CompanyName: companyName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			Issuer:    "venuevista",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a session token.
func ValidateToken(tokenStr string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

// GenerateMFACode returns a zero-padded six digit challenge code.
func GenerateMFACode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate MFA code: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

func RemoveDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// VenueDisplayName joins the resolved geographic names smallest-unit first,
// "barangay, city, province". Empty parts are skipped.
func VenueDisplayName(barangay, city, province string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{barangay, city, province} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// UploadImages pushes local or base64 image payloads to Cloudinary and
// returns the hosted secure URLs.
func UploadImages(ctx context.Context, cld *cloudinary.Cloudinary, images []string, folder string) ([]string, error) {
	if cld == nil {
		return nil, errors.New("cloudinary is not configured")
	}

	var urls []string
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		uploadResult, err := cld.Upload.Upload(ctx, img, uploader.UploadParams{
			Folder: folder,
			Tags:   []string{"venuevista"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		urls = append(urls, uploadResult.SecureURL)
	}
	return urls, nil
}
