package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/config"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/engine"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/export"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/logger"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
	"github.com/iWorld-y/post_studio/app/post_studio/pkg/storage"
)

var (
	confPath = flag.String("conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
	service  = flag.String("service", string(dm.ServiceWeightLoss), "clinic service")
	tone     = flag.String("tone", string(dm.ToneWarmProfessional), "caption tone")
	angle    = flag.String("angle", "Seasonal wellness tip", "angle / hook")
	cta      = flag.String("cta", "Book a consult this week", "call to action")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(*confPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		log.Fatalf("配置错误: %v", err)
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动 Post Studio...")

	// 如果配置了数据库信息，则记录生成历史
	var store engine.PostStore
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅输出文件。", err)
		} else {
			store = s
			defer s.Close()
			logger.Log.Info("已成功连接到数据库")
		}
	} else {
		logger.Log.Info("未配置数据库信息，跳过数据库连接")
	}

	// 3. 初始化引擎
	eng, err := engine.NewEngine(cfg, store)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	req := dm.GenerationRequest{
		Service: dm.Service(*service),
		Tone:    dm.Tone(*tone),
		Angle:   *angle,
		CTA:     *cta,
	}

	post, err := eng.Run(context.Background(), req, engine.RunOptions{
		ProgressCallback: func(status string, progress int) {
			logger.Log.Infof("[%3d%%] %s", progress, status)
		},
	})
	if err != nil {
		logger.Log.Fatalf("生成失败: %v", err)
	}

	captionPath, err := export.SaveCaption(filepath.Dir(post.ImagePath), post.Copy)
	if err != nil {
		logger.Log.Fatalf("保存文案失败: %v", err)
	}

	fmt.Println("Caption")
	fmt.Println(post.Copy.Caption)
	fmt.Println()
	fmt.Println("Hashtags")
	fmt.Println(post.Copy.HashtagLine())
	fmt.Println()
	fmt.Println(post.Compliance.Banner())
	fmt.Println()
	fmt.Printf("Image:   %s\n", post.ImagePath)
	fmt.Printf("Caption: %s\n", captionPath)
}
