package logger

import "github.com/ideamans/go-l10n"

// The encoder diagnostics (vl_video_encoder_init, handle, frameCount) are
// kept verbatim so existing log scrapers keep matching them.
func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Using %s engine":                   "%s エンジンを使用します",
		"Encoded %d frames, %d bytes in %s": "%d フレームをエンコードしました (%d バイト, %s)",
		"Summary saved to %s":               "サマリーを %s に保存しました",
		"Interrupted, shutting down...":     "中断されました。シャットダウン中...",
		"Did not stop within %s, exiting":   "%s 以内に停止しなかったため終了します",
		"State %s -> %s":                    "状態遷移 %s -> %s",

		// Pump
		"read underflow (%d of %d)":                   "読み込み不足 (%d / %d)",
		"read failed (%s)":                            "読み込みに失敗しました (%s)",
		"Encode failed on frame %d: %s":               "フレーム %d のエンコードに失敗しました: %s",
		"Output buffer overflow (%d of %d bytes)":     "出力バッファがあふれました (%d / %d バイト)",
		"Interrupted after %d frames":                 "%d フレーム処理後に中断されました",
		"Drained %d bytes":                            "%d バイトを排出しました",
		"End of stream after %d frames, %d bytes out": "ストリーム終端: %d フレーム, 出力 %d バイト",
		"Failed to save debug frame %d: %s":           "デバッグ用フレーム %d の保存に失敗しました: %s",
		"Failed to save debug access unit %d: %s":     "デバッグ用アクセスユニット %d の保存に失敗しました: %s",
		"Session %s destroyed":                        "セッション %s を破棄しました",

		// Bitstream inspection
		"Coded size %dx%d differs from configured %dx%d": "符号化サイズ %dx%d が設定値 %dx%d と異なります",
		"Could not parse SPS: %s":                        "SPSを解析できません: %s",
		"SPS: profile %d, level %d, %dx%d":               "SPS: プロファイル %d, レベル %d, %dx%d",

		// Engines
		"Selected %s engine":        "%s エンジンを選択しました",
		"%s engine not available":   "%s エンジンは利用できません",
		"Engine %s, codec %s":       "エンジン %s, コーデック %s",
		"Using ffmpeg at %s":        "ffmpeg を使用します: %s",
		"Failed to kill ffmpeg: %s": "ffmpeg の終了に失敗しました: %s",
		"Loaded %s, version %s":     "%s を読み込みました (バージョン %s)",
		"Bitrate %d is not applied by the x264 engine, rate control follows the %s preset":       "x264 エンジンはビットレート %d を適用しません。レート制御は %s プリセットに従います",
		"GOP %d is not applied by the x264 engine, the keyframe interval is the frame rate (%d)": "x264 エンジンは GOP %d を適用しません。キーフレーム間隔はフレームレート (%d) です",

		// Summary
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
