package codegen

import "strings"

const responsiveJS = `/* Generated by faceplate. Do not edit. */
(function (scopeName) {
  'use strict';
  var MIN_SCALE = {{MIN}};
  var MAX_SCALE = {{MAX}};
  var root = document;
  if (scopeName) {
    root = document.querySelector('[data-fp-window="' + scopeName + '"]') || document;
  }

  function fit() {
    var wrapper = root.querySelector('#plugin-wrapper');
    var container = root.querySelector('#plugin-container');
    if (!wrapper || !container || !wrapper.clientWidth || !wrapper.clientHeight) {
      return;
    }
    var w = container.offsetWidth, h = container.offsetHeight;
    if (!w || !h) {
      return;
    }
    var scale = Math.min(wrapper.clientWidth / w, wrapper.clientHeight / h);
    scale = Math.max(MIN_SCALE, Math.min(MAX_SCALE, scale));
    container.style.transform = 'scale(' + scale + ')';
    container.style.left = Math.max(0, (wrapper.clientWidth - w * scale) / 2) + 'px';
    container.style.top = Math.max(0, (wrapper.clientHeight - h * scale) / 2) + 'px';
  }

  window.addEventListener('resize', fit);
  document.addEventListener('faceplate:window-shown', fit);
  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', fit);
  } else {
    fit();
  }
})(document.currentScript && document.currentScript.dataset.scope);
`

// GenerateResponsiveJS renders responsive.js. The container scales
// uniformly to fit the wrapper, clamped to [minScale, maxScale].
func GenerateResponsiveJS(minScale, maxScale float64) string {
	if maxScale < minScale {
		minScale, maxScale = maxScale, minScale
	}
	return strings.NewReplacer("{{MIN}}", num(minScale), "{{MAX}}", num(maxScale)).Replace(responsiveJS)
}
