package container

import (
	"fmt"
	"log"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/markdown"

	// Contact domain imports
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRelay "portfolio-backend/internal/domains/contact/relay"
	contactService "portfolio-backend/internal/domains/contact/service"

	// Blog domain imports
	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"

	// Project domain imports
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config   *config.Config     // Application config
	Renderer *markdown.Renderer // Markdown -> HTML
	Relay    *contactRelay.Client

	// ========================================
	// REPOSITORY LAYER (CONTENT ACCESS)
	// ========================================
	// Filesystem-backed; stateless, read fresh on every call

	BlogRepo    blogRepo.BlogRepository
	ProjectRepo projectRepo.ProjectRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	ContactService contactService.ContactService
	BlogService    blogService.BlogService
	ProjectService projectService.ProjectService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	ContactHandler *contactHandler.ContactHandler
	BlogHandler    *blogHandler.BlogHandler
	ProjectHandler *projectHandler.ProjectHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (renderer, relay client) - phụ thuộc Config
// 3. Repositories - phụ thuộc Config (content paths)
// 4. Services - phụ thuộc Repositories + Infrastructure
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	c.Renderer = markdown.NewRenderer()

	relayEndpoint := cfg.Contact.Endpoint()
	c.Relay = contactRelay.NewClient(
		relayEndpoint,
		time.Duration(cfg.Contact.TimeoutSeconds)*time.Second,
	)
	log.Printf("📮 Contact relay endpoint: %s (test mode: %v)", relayEndpoint, cfg.Contact.TestMode)

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.BlogRepo = blogRepo.NewFilesystemRepository(cfg.Content.PostsDir)
	c.ProjectRepo = projectRepo.NewFilesystemRepository(cfg.Content.ProjectsDir)
	log.Printf("📚 Content: posts=%s projects=%s", cfg.Content.PostsDir, cfg.Content.ProjectsDir)

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	c.ContactService = contactService.NewContactService(c.Relay)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.Renderer)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, c.Renderer)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)

	log.Println("✅ DI Container ready")
	return c, nil
}

// Cleanup releases resources on shutdown. Nothing here holds
// connections open besides the relay client's idle pool.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")
}
