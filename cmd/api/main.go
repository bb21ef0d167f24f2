package main

import (
	"context"
	"fmt"
	"log"
)

func main() {
	if err := runFunc(context.Background()); err != nil {
		fatalf("API起動失敗: %v", err)
	}
}

/**
 * 依存を初期化し、HTTP サーバーを起動する。
 * 終了時の後片付け失敗は起動結果には影響させず、ログに残すだけにする。
 */
func run(ctx context.Context) error {
	container, err := newContainer(ctx)
	if err != nil {
		return fmt.Errorf("依存初期化失敗: %w", err)
	}
	defer func() {
		if err := closeContainer(container); err != nil {
			log.Printf("依存終了失敗: %v", err)
		}
	}()

	router := newRouter(container.PlatformHandler, container.GenerateHandler, container.ValidateHandler)
	if err := router.Run(); err != nil {
		return fmt.Errorf("サーバー起動失敗: %w", err)
	}
	return nil
}
