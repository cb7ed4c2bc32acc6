package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"oneko/config"
	"oneko/internal/ascii"
	"oneko/internal/game"
	"oneko/internal/monitor"
	"oneko/internal/settings"
	"oneko/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "launch config file (yaml)")
	spriteURL := flag.String("sprite-url", "", "save a new sprite sheet URL and exit")
	spriteFile := flag.String("sprite-file", "", "embed a local image as the sprite sheet and exit")
	layout := flag.Bool("layout", false, "print every animation frame of the current sheet as ASCII and exit")
	layoutWidth := flag.Int("layout-width", 16, "characters per frame row for -layout")
	flag.Parse()

	// 1. 读取启动配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("读取配置失败: ", err)
	}

	store := settings.Store(settings.NewGdataStore())
	panel := &settings.Panel{Store: store, Namespace: cfg.Namespace, Key: settings.Key}

	// 2. 设置面板的两个操作，做完就退出
	switch {
	case *spriteURL != "":
		notice, err := panel.SetSpriteURL(*spriteURL)
		if err != nil {
			log.Fatal("保存失败: ", err)
		}
		fmt.Println(notice)
		return
	case *spriteFile != "":
		notice, err := panel.ImportFile(*spriteFile)
		if err != nil {
			log.Fatal("导入失败: ", err)
		}
		fmt.Println(notice)
		return
	}

	s, err := store.Load(cfg.Namespace, settings.Key)
	if err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 精灵图加载失败不致命，只是什么都不画
	img, err := sprite.Load(ctx, s.SpriteURL)
	if err != nil {
		log.Printf("[Sprite] Warning: %v", err)
	}

	if *layout {
		if img == nil {
			log.Fatal("没有可用的精灵图")
		}
		if err := ascii.WriteLayout(os.Stdout, img, *layoutWidth); err != nil {
			log.Fatal(err)
		}
		return
	}

	// 4. 窗口设置
	game.SetupWindow(cfg)

	var sheet *ebiten.Image
	if img != nil {
		sheet = ebiten.NewImageFromImage(img)
	}

	// 后台监控，繁忙时省电
	var sampler *monitor.Sampler
	if cfg.PowerSaver {
		sampler = monitor.New(monitor.DefaultInterval)
		sampler.Start(ctx)
	}

	// 配置不热加载，改了只提醒
	if w, err := config.Watch(*configPath); err != nil {
		log.Printf("[Config] Warning: cannot watch %s: %v", *configPath, err)
	} else {
		defer w.Close()
		go func() {
			for name := range w.Events {
				log.Printf("[Config] %s changed, restart to apply", name)
			}
		}()
	}

	// 5. 启动
	mgr := game.NewManager(cfg, sheet, sampler)
	mgr.Init(ctx, game.ScreenCenter())
	defer mgr.Close()

	if err := ebiten.RunGame(mgr); err != nil {
		log.Fatal(err)
	}
}
