package engine

import (
	"bytes"
	"encoding/json"
	"math"
	"text/template"
)

const (
	ExplanationMinHeight = 480.0
	ExplanationMaxHeight = 840.0

	explanationLineHeight = 22.0
	explanationLineChars  = 80.0
	explanationMinLines   = 3.0
)

// EstimateExplanationHeight sizes the card's placeholder box before the
// embedded document ever renders. Monotone in text length and clamped to
// [ExplanationMinHeight, ExplanationMaxHeight]; once the document mounts,
// the resize protocol is authoritative.
func EstimateExplanationHeight(rawHTML string) float64 {
	plain := NormalizeInput(rawHTML)
	lines := math.Max(explanationMinLines, math.Ceil(float64(len([]rune(plain)))/explanationLineChars))
	height := ExplanationMinHeight + lines*explanationLineHeight
	return math.Min(ExplanationMaxHeight, height)
}

// ResizeMessageType is the discriminant the embedded document sends with
// every size report; the canvas host keys on it.
const ResizeMessageType = "excalidraw:resize"

type explanationCardData struct {
	FullHTML  string
	ElementID string
	Type      string
}

// ExplanationCardHTML builds the self-contained interactive document for
// one explanation card. The document runs in an isolated context; its only
// channel back to the host is the rAF-coalesced size-report message.
func ExplanationCardHTML(rawHTML, elementID string) (string, error) {
	fullHTML, err := json.Marshal(rawHTML)
	if err != nil {
		return "", err
	}
	id, err := json.Marshal(elementID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = explanationCardTemplate.Execute(&buf, explanationCardData{
		FullHTML:  string(fullHTML),
		ElementID: string(id),
		Type:      ResizeMessageType,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var explanationCardTemplate = template.Must(template.New("explanation-card").Parse(`<!DOCTYPE html>
<html lang="bn">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Explanation Card</title>

  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css" crossorigin="anonymous">
  <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js" crossorigin="anonymous"></script>
  <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js" crossorigin="anonymous"></script>

  <link href="https://fonts.googleapis.com/css2?family=Noto+Sans+Bengali:wght@400;500;600;700&family=Noto+Sans:wght@400;500;600&display=swap" rel="stylesheet">

  <style>
    :root {
      --primary: #6d28d9;
      --primary-hover: #5b21b6;
      --text: #1f2937;
    }
    * { margin:0; padding:0; box-sizing:border-box; }
    html, body {
      font-family: "Noto Sans Bengali", "Noto Sans", system-ui, sans-serif;
      background: transparent;
      width: fit-content;
      min-width: 240px;
      height: auto;
      display: flex;
      justify-content: flex-start;
      align-items: flex-start;
      color: var(--text);
    }
    .container {
      width: auto;
      max-width: 980px;
      min-width: 240px;
      text-align: center;
      transition: all 0.35s ease;
      background: transparent;
    }
    .toggle-btn {
      margin-left: -70px;
      font-size: 1.28rem;
      font-weight: 600;
      margin-top: 40px;
      padding: 12px 34px;
      background: var(--primary);
      color: #fff;
      border: none;
      border-radius: 10px;
      cursor: pointer;
      transition: all 0.25s ease;
      box-shadow: 0 3px 10px rgba(109, 40, 217, 0.25);
      display: inline-flex;
      align-items: center;
      gap: 8px;
      position: relative;
      overflow: hidden;
    }
    .toggle-btn:hover:not(:disabled) {
      background: var(--primary-hover);
      transform: translateY(-1px);
      box-shadow: 0 6px 16px rgba(109, 40, 217, 0.35);
    }
    .toggle-btn:disabled { opacity: 0.65; cursor: not-allowed; }
    .spinner {
      width: 18px;
      height: 18px;
      border: 3px solid rgba(255,255,255,0.35);
      border-top: 3px solid #fff;
      border-radius: 50%;
      animation: spin 1s linear infinite;
    }
    @keyframes spin { to { transform: rotate(360deg); } }
    .content-card {
      margin-top: 16px;
      padding: 0;
      background: transparent;
      border: none;
      box-shadow: none;
      line-height: 1.82;
      font-size: 1.34rem;
      text-align: left;
      opacity: 0;
      max-height: 0;
      overflow: hidden;
      transition: max-height 0.7s ease, opacity 0.5s ease, padding 0.5s ease;
    }
    .content-card.visible {
      opacity: 1;
      max-height: 3200px;
      padding: 20px 28px;
      margin-top: 20px;
    }
    .math-box {
      padding: 10px 0;
    }
    .math-box img { max-width: 100%; height: auto; }
    ul, ol {
      list-style-type: disc;
      margin: 0.6em 0 0.6em 2em;
      padding-left: 1em;
    }
    li { margin-bottom: 0.5em; }
    p { margin-bottom: 0.9em; }
    strong { font-weight: 700; }
    @media (max-width: 640px) {
      .toggle-btn { font-size: 1.18rem; padding: 10px 26px; }
      .content-card { font-size: 1.20rem; }
      .content-card.visible { padding: 14px 20px; }
    }
  </style>
</head>
<body>
  <div class="container">
    <button class="toggle-btn" id="toggleBtn">ব্যাখ্যা</button>
    <div class="content-card" id="contentCard">
      <div class="math-box" id="previewBox"></div>
    </div>
  </div>

  <script>
    const fullHTML = {{.FullHTML}};
    const toggleBtn = document.getElementById("toggleBtn");
    const contentCard = document.getElementById("contentCard");
    const previewBox = document.getElementById("previewBox");
    const container = document.querySelector(".container");
    const elementId = {{.ElementID}};

    let state = {
      visible: false,
      typing: false,
      index: 0,
    };

    const notifySize = (() => {
      let raf = 0;
      return () => {
        if (raf) return;
        raf = requestAnimationFrame(() => {
          raf = 0;
          const rect = container?.getBoundingClientRect() || document.body.getBoundingClientRect();
          const width = Math.ceil(rect.width || 0);
          const height = Math.ceil(rect.height || 0);
          if (width > 0 && height > 0 && window.parent) {
            window.parent.postMessage(
              { type: "{{.Type}}", width, height, id: elementId },
              "*"
            );
          }
        });
      };
    })();

    const renderMath = () => {
      if (typeof renderMathInElement === "function") {
        renderMathInElement(previewBox, {
          delimiters: [
            {left: "\\(", right: "\\)", display: false},
            {left: "\\[", right: "\\]", display: true},
            {left: "$", right: "$", display: false},
            {left: "$$", right: "$$", display: true}
          ],
          throwOnError: false,
          strict: "ignore"
        });
      }
    };

    const startTyping = () => {
      if (state.typing) return;
      state.typing = true;
      state.index = 0;
      previewBox.innerHTML = "";
      toggleBtn.disabled = true;
      toggleBtn.innerHTML = "লোড হচ্ছে <span class=\"spinner\"></span>";

      const typeNext = () => {
        if (state.index < fullHTML.length) {
          const chunk = 60;
          const nextIndex = Math.min(state.index + chunk, fullHTML.length);
          previewBox.innerHTML = fullHTML.substring(0, nextIndex);
          state.index = nextIndex;
          renderMath();
          notifySize();
          setTimeout(typeNext, 50);
        } else {
          // Final full render: partial markup may have rendered wrong
          // mid-reveal, this pass guarantees the finished card is correct.
          previewBox.innerHTML = fullHTML;
          renderMath();
          state.typing = false;
          toggleBtn.disabled = false;
          toggleBtn.textContent = "ব্যাখ্যা";
          notifySize();
        }
      };

      setTimeout(typeNext, 150);
    };

    toggleBtn.addEventListener("click", () => {
      if (state.typing) return;

      state.visible = !state.visible;

      if (state.visible) {
        contentCard.classList.add("visible");
        toggleBtn.textContent = "ব্যাখ্যা";
        startTyping();
      } else {
        contentCard.classList.remove("visible");
        toggleBtn.textContent = "ব্যাখ্যা";
      }

      setTimeout(notifySize, 220);
    });

    window.addEventListener("load", () => {
      if (typeof katex === "undefined") {
        previewBox.innerHTML = "<p style=\"color:#dc2626;\">KaTeX লোড হয়নি। ইন্টারনেট চেক করুন।</p>";
      }
      notifySize();
    });

    const checkAutoRender = setInterval(() => {
      if (typeof renderMathInElement === "function") {
        clearInterval(checkAutoRender);
        renderMath();
      }
    }, 150);

    if (typeof ResizeObserver !== "undefined") {
      new ResizeObserver(notifySize).observe(document.body);
    }

    if (typeof MutationObserver !== "undefined") {
      new MutationObserver(notifySize).observe(previewBox, {
        childList: true,
        subtree: true,
        characterData: true
      });
    }
  </script>
</body>
</html>`))
