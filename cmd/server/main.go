package main

import (
	"context"
	"log"
	"net/http"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("initializing artifact service")
	artifactService := InitializeArtifactService(ctx)

	log.Println("initializing pictech client")
	pictechClient := InitializePictechClient()

	translationService := InitializeTranslationService(pictechClient, artifactService)
	removalService := InitializeRemovalService(pictechClient, artifactService)

	log.Println("registering http handlers")
	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate/url", handleTranslateFromURL(ctx, translationService))
	mux.HandleFunc("/api/translate/base64", handleTranslateFromBase64(ctx, translationService))
	mux.HandleFunc("/api/translate/upload", handleTranslateUpload(ctx, translationService))
	mux.HandleFunc("/api/translate/result/", handleTranslateResult(ctx, translationService))
	mux.HandleFunc("/api/translate/uploadExportedImage", handleUploadExportedImage(ctx, translationService))
	mux.HandleFunc("/api/translate/save", handleSaveState())
	mux.HandleFunc("/api/translate/iopaint", handleInpaint(ctx, translationService))
	mux.HandleFunc("/api/translate/uploadIoInpaintImage", handleUploadInpaintImage(ctx, translationService))
	mux.HandleFunc("/api/translate/removeBackground", handleRemoveBackground(ctx, removalService))

	uploadRootDir := InitializeUploadRootDir()
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadRootDir))))

	handler := newCORSMiddleware(InitializeAllowedOrigins(), mux)

	listenAddr := InitializeListenAddr()
	log.Printf("listening on %s", listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, handler))
}
