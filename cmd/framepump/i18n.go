// Package main provides localization for the framepump CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Encoder":       "エンコーダー",
		"Engine":        "エンジン",
		"Configuration": "設定",
		"Debug":         "デバッグ",
		"Logging":       "ログ",

		// Root command
		"Encode raw I420 frames from stdin to an H.264 stream on stdout": "標準入力のI420フレームをH.264ストリームとして標準出力へエンコード",
		"Show help": "ヘルプを表示",

		// Required flags
		"Frame width in pixels (required)":  "フレーム幅（ピクセル、必須）",
		"Frame height in pixels (required)": "フレーム高さ（ピクセル、必須）",
		"Frame rate (required)":             "フレームレート（必須）",

		// Encoder flags
		"Target bitrate in bits per second (default: %d)":  "目標ビットレート（bps、デフォルト: %d）",
		"Maximum I-frame interval in frames (default: %d)": "Iフレームの最大間隔（フレーム数、デフォルト: %d）",

		// Engine flags
		"Codec engine: auto, hicodec, x264, ffmpeg or null (default: auto)":      "コーデックエンジン: auto, hicodec, x264, ffmpeg, null（デフォルト: auto）",
		"Path to libhicodec (falls back to HICODEC_LIB_PATH, then system paths)": "libhicodecのパス（未指定時は HICODEC_LIB_PATH、次にシステムパス）",
		"Path to ffmpeg (falls back to FFMPEG_PATH, then PATH)":                  "ffmpegのパス（未指定時は FFMPEG_PATH、次に PATH）",

		// Other flags
		"YAML file with default option values":                     "オプションの既定値を記述したYAMLファイル",
		"Directory for dumping the first frames and access units":  "先頭フレームとアクセスユニットを保存するディレクトリ",
		"Write a YAML run summary to this file":                    "実行サマリーをYAMLでこのファイルに書き込む",
		"Log level (debug, info, warn, error)":                     "ログレベル (debug, info, warn, error)",
		"Diagnostic language, en or ja (default: from the locale)": "診断メッセージの言語 en または ja（デフォルト: ロケールから判定）",
		"Suppress all log output":                                  "ログ出力をすべて抑制",

		// Runtime
		"Failed to load .env: %s": ".env の読み込みに失敗しました: %s",
	})
}
